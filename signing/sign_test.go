package signing_test

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/spacemeshos/go-scale"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/rpow/signing"
)

func TestSignAndVerify(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	data := signing.NewSubmission(3035)
	pubKey, privKey, err := ed25519.GenerateKey(nil)
	require.NoError(err)

	// Sign
	signed, err := signing.Sign(data, privKey, pubKey)
	require.NoError(err)
	require.EqualValues(data, *signed.Data())
	require.Equal([]byte(pubKey), signed.PubKey())

	// Create Signed from a signed data
	signed2, err := signing.NewFromScaleEncodable(*signed.Data(), signed.Signature(), signed.PubKey())
	require.NoError(err)
	require.EqualValues(signed2.Data(), signed.Data())
}

func TestInvalidSignature(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	pubKey, privKey, err := ed25519.GenerateKey(nil)
	require.NoError(err)

	signed, err := signing.Sign(signing.NewSubmission(3035), privKey, pubKey)
	require.NoError(err)

	// different nonce
	_, err = signing.NewFromScaleEncodable(signing.NewSubmission(3036), signed.Signature(), pubKey)
	require.ErrorIs(err, signing.ErrSignatureInvalid)

	// different key
	otherPub, _, err := ed25519.GenerateKey(nil)
	require.NoError(err)
	_, err = signing.NewFromScaleEncodable(*signed.Data(), signed.Signature(), otherPub)
	require.ErrorIs(err, signing.ErrSignatureInvalid)
}

func TestInvalidPubkeyLength(t *testing.T) {
	t.Parallel()
	_, err := signing.NewFromScaleEncodable(signing.NewSubmission(1), make([]byte, ed25519.SignatureSize), []byte{1, 2, 3})
	require.ErrorIs(t, err, signing.ErrInvalidPubkeyLen)
}

func TestSubmissionScaleEncoding(t *testing.T) {
	t.Parallel()
	submission := signing.NewSubmission(3035)

	var buf bytes.Buffer
	_, err := submission.EncodeScale(scale.NewEncoder(&buf))
	require.NoError(t, err)

	expected := append([]byte{14 << 2}, "rpow/submit/v1"...)
	expected = append(expected, 0x6d, 0x2f) // compact 3035
	require.Equal(t, expected, buf.Bytes())

	var decoded signing.Submission
	_, err = decoded.DecodeScale(scale.NewDecoder(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)
	require.Equal(t, submission, decoded)
}

func TestSubmissionDomainLimit(t *testing.T) {
	t.Parallel()
	submission := signing.Submission{Domain: string(make([]byte, 65)), Nonce: 1}
	_, err := submission.EncodeScale(scale.NewEncoder(&bytes.Buffer{}))
	require.Error(t, err)

	_, err = signing.Sign(submission, ed25519.NewKeyFromSeed(make([]byte, ed25519.SeedSize)), nil)
	require.Error(t, err)
}
