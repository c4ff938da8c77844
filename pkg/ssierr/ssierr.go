// Package ssierr is the error vocabulary shared by the DID resolver and the
// verification code layered on top of it.
//
// Every failure is described by a Kind. Kinds without payload are errors on
// their own; kinds that carry data (a curve name or a wrapped external error)
// are reported as *Error. Both match with errors.Is against the Kind.
package ssierr

import (
	"encoding/asn1"
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Kind enumerates all error kinds. New wrapped kinds may be appended; callers
// switching over Kind must keep a default arm.
type Kind int

const (
	// Reserved is the catch-all for kinds unknown to this version.
	Reserved Kind = iota

	InvalidSubject
	InvalidCriticalHeader
	UnknownCriticalHeader
	InvalidIssuer
	AlgorithmNotImplemented
	ProofTypeNotImplemented
	MissingAlgorithm
	AlgorithmMismatch
	UnsupportedAlgorithm
	KeyTypeNotImplemented
	CurveNotImplemented
	MissingKey
	MissingPrivateKey
	MissingModulus
	MissingExponent
	MissingPrime
	MissingCredential
	MissingKeyParameters
	MissingProof
	MissingIssuanceDate
	MissingTypeVerifiableCredential
	MissingTypeVerifiablePresentation
	MissingIssuer
	MissingVerificationMethod
	Key
	TimeError
	URI
	InvalidContext
	MissingContext
	MissingDocumentID
	MissingProofSignature
	ExpiredProof
	FutureProof
	InvalidProofPurpose
	InvalidProofDomain
	InvalidSignature
	InvalidJWS
	MissingCredentialSchema
	UnsupportedProperty
	UnsupportedKeyType
	UnsupportedType
	UnsupportedProofPurpose
	UnsupportedCheck
	TooManyBlankNodes
	JWTCredentialInPresentation
	ExpectedUnencodedHeader
	ResourceNotFound
	InvalidProofTypeType
	InvalidKeyLength
	InconsistentDIDKey
	InvalidDID
	Crypto

	// wrapped external errors
	KeyRejected
	FromUTF8
	ASN1Encode
	Base64
	Multibase
	JSON

	numKinds
)

var messages = [numKinds]string{
	Reserved:                          "Unknown error",
	InvalidSubject:                    "Invalid subject for JWT",
	InvalidCriticalHeader:             "Invalid crit property in JWT header",
	UnknownCriticalHeader:             "Unknown critical header name in JWT header",
	InvalidIssuer:                     "Invalid issuer for JWT",
	AlgorithmNotImplemented:           "JWA algorithm not implemented",
	ProofTypeNotImplemented:           "Linked Data Proof type not implemented",
	MissingAlgorithm:                  "Missing algorithm in JWT",
	AlgorithmMismatch:                 "Algorithm in JWS header does not match JWK",
	UnsupportedAlgorithm:              "Unsupported algorithm",
	KeyTypeNotImplemented:             "Key type not implemented",
	CurveNotImplemented:               "Curve not implemented",
	MissingKey:                        "JWT key not found",
	MissingPrivateKey:                 "Missing private key parametern JWK",
	MissingModulus:                    "Missing modulus in RSA key",
	MissingExponent:                   "Missing modulus in RSA key",
	MissingPrime:                      "Missing prime factor in RSA key",
	MissingCredential:                 "Verifiable credential not found in JWT",
	MissingKeyParameters:              "JWT key parameters not found",
	MissingProof:                      "Missing proof property",
	MissingIssuanceDate:               "Missing issuance date",
	MissingTypeVerifiableCredential:   "Missing type VerifiableCredential",
	MissingTypeVerifiablePresentation: "Missing type VerifiablePresentation",
	MissingIssuer:                     "Missing issuer property",
	MissingVerificationMethod:         "Missing proof verificationMethod",
	Key:                               "problem with JWT key",
	TimeError:                         "Unable to convert date/time",
	URI:                               "Invalid URI",
	InvalidContext:                    "Invalid context",
	MissingContext:                    "Missing context",
	MissingDocumentID:                 "Missing document ID",
	MissingProofSignature:             "Missing JWS in proof",
	ExpiredProof:                      "Expired proof",
	FutureProof:                       "Proof creation time is in the future",
	InvalidProofPurpose:               "Invalid proof purpose",
	InvalidProofDomain:                "Invalid proof domain",
	InvalidSignature:                  "Invalid Signature",
	InvalidJWS:                        "Invalid JWS",
	MissingCredentialSchema:           "Missing credential schema for ZKP",
	UnsupportedProperty:               "Unsupported property for LDP",
	UnsupportedKeyType:                "Unsupported key type for did:key",
	UnsupportedType:                   "Unsupported type for LDP",
	UnsupportedProofPurpose:           "Unsupported proof purpose",
	UnsupportedCheck:                  "Unsupported check",
	TooManyBlankNodes:                 "Multiple blank nodes not supported. Either credential or credential subject must have id property. Presentation must have id property.",
	JWTCredentialInPresentation:       "Unsupported JWT VC in VP",
	ExpectedUnencodedHeader:           "Expected unencoded JWT header",
	ResourceNotFound:                  "Resource not found",
	InvalidProofTypeType:              "Invalid ProofType type",
	InvalidKeyLength:                  "Invalid key length",
	InconsistentDIDKey:                "Inconsistent DID Key",
	InvalidDID:                        "Invalid DID",
	Crypto:                            "Crypto error",
	KeyRejected:                       "Key rejected",
	FromUTF8:                          "Invalid UTF-8",
	ASN1Encode:                        "ASN.1 encoding error",
	Base64:                            "Base64 decoding error",
	Multibase:                         "Multibase decoding error",
	JSON:                              "JSON error",
}

// Error returns the fixed message of the kind.
func (k Kind) Error() string {
	if k <= Reserved || k >= numKinds {
		return messages[Reserved]
	}
	return messages[k]
}

func (k Kind) String() string {
	return k.Error()
}

// Wrapped reports whether the kind delegates its message to a wrapped error.
func (k Kind) Wrapped() bool {
	return k >= KeyRejected && k < numKinds
}

// Error is a Kind with payload.
type Error struct {
	Kind Kind

	// Curve names the unsupported curve for CurveNotImplemented.
	Curve string

	// Err is the external error of a wrapped kind.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == CurveNotImplemented:
		return fmt.Sprintf("Curve not implemented: '%q'", e.Curve)
	case e.Kind.Wrapped() && e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.Error()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches targets of the same Kind, either bare or as *Error.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		return e.Kind == t.Kind
	default:
		return false
	}
}

// KindOf returns the Kind carried by err or by any error it wraps, or
// Reserved when none is part of this vocabulary.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind
	}
	var k Kind
	if errors.As(err, &k) && k > Reserved && k < numKinds {
		return k
	}
	return Reserved
}

func NewCurveNotImplemented(curve string) *Error {
	return &Error{Kind: CurveNotImplemented, Curve: curve}
}

func FromKeyRejected(err error) *Error {
	return &Error{Kind: KeyRejected, Err: err}
}

// UTF8Error reports bytes that are not valid UTF-8.
type UTF8Error struct {
	Offset int
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("invalid utf-8 sequence at offset %d", e.Offset)
}

func FromUTF8Error(err *UTF8Error) *Error {
	return &Error{Kind: FromUTF8, Err: err}
}

// CheckUTF8 returns a FromUTF8 error locating the first invalid sequence in b.
func CheckUTF8(b []byte) error {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return FromUTF8Error(&UTF8Error{Offset: i})
		}
		i += size
	}
	return nil
}

func FromASN1(err asn1.StructuralError) *Error {
	return &Error{Kind: ASN1Encode, Err: err}
}

func FromBase64(err base64.CorruptInputError) *Error {
	return &Error{Kind: Base64, Err: err}
}

func FromMultibase(err error) *Error {
	return &Error{Kind: Multibase, Err: err}
}

func FromJSON(err error) *Error {
	return &Error{Kind: JSON, Err: err}
}

// FromCrypto reports a failure of the underlying cryptography. The detail of
// err is dropped on purpose and never exposed.
func FromCrypto(error) Kind {
	return Crypto
}
