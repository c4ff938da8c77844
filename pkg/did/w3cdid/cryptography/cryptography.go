package cryptography

import (
	"encoding/json"

	"github.com/tcfw/didweb/pkg/ssierr"
	jose "gopkg.in/square/go-jose.v2"
)

type VerificationMethodType string

const (
	Bls12381G1Key2020                 VerificationMethodType = "Bls12381G1Key2020"
	Bls12381G2Key2020                 VerificationMethodType = "Bls12381G2Key2020"
	EcdsaSecp256k1RecoveryMethod2020  VerificationMethodType = "EcdsaSecp256k1RecoveryMethod2020"
	EcdsaSecp256k1VerificationKey2019 VerificationMethodType = "EcdsaSecp256k1VerificationKey2019"
	Ed25519VerificationKey2018        VerificationMethodType = "Ed25519VerificationKey2018"
	Ed25519VerificationKey2020        VerificationMethodType = "Ed25519VerificationKey2020"
	JsonWebKey2020                    VerificationMethodType = "JsonWebKey2020"
	Multikey                          VerificationMethodType = "Multikey"
	PgpVerificationkey2021            VerificationMethodType = "PgpVerificationkey2021"
	RsaVerificationKey2018            VerificationMethodType = "RsaVerificationKey2018"
	Verificationcondition2021         VerificationMethodType = "Verificationcondition2021"
	X25519KeyAgreementKey2019         VerificationMethodType = "X25519KeyAgreementKey2019"
)

type VerificationMethod struct {
	ID                 string                 `json:"id"`
	Type               VerificationMethodType `json:"type"`
	Controller         string                 `json:"controller"`
	PublicKeyJwk       json.RawMessage        `json:"publicKeyJwk,omitempty"`
	PublicKeyMultibase string                 `json:"publicKeyMultibase,omitempty"`
}

// JWK decodes publicKeyJwk. Keys go-jose cannot represent are rejected.
func (vm VerificationMethod) JWK() (*jose.JSONWebKey, error) {
	if len(vm.PublicKeyJwk) == 0 {
		return nil, ssierr.MissingKey
	}

	jwk := &jose.JSONWebKey{}
	if err := jwk.UnmarshalJSON(vm.PublicKeyJwk); err != nil {
		return nil, ssierr.FromKeyRejected(err)
	}

	if !jwk.Valid() {
		return nil, ssierr.MissingKeyParameters
	}

	return jwk, nil
}
