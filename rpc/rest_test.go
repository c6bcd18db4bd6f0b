package rpc

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/stretchr/testify/require"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	api "github.com/spacemeshos/rpow/release/proto/go/rpc/api/v1"
)

func newRESTServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := runtime.NewServeMux()
	require.NoError(t, api.RegisterPowServiceHandlerServer(context.Background(), mux, NewServer(newTestLedger(t))))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func postProto(t *testing.T, url string, in proto.Message) *http.Response {
	t.Helper()
	body, err := protojson.Marshal(in)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, out proto.Message) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, protojson.Unmarshal(body, out), string(body))
}

func TestRESTDifficulty(t *testing.T) {
	t.Parallel()
	srv := newRESTServer(t)

	resp, err := http.Get(srv.URL + "/v1/difficulty")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out api.DifficultyResponse
	decode(t, resp, &out)
	require.Equal(t, "340282366920938463463374607431768", out.Target)
	require.EqualValues(t, 1000, out.LastUpdate)
}

func TestRESTSubmit(t *testing.T) {
	t.Parallel()
	srv := newRESTServer(t)

	resp := postProto(t, srv.URL+"/v1/submit", signedSubmit(t, solutionNonce))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out api.SubmitResponse
	decode(t, resp, &out)
	require.Equal(t, solutionDigest, hex.EncodeToString(out.Digest))

	resp = postProto(t, srv.URL+"/v1/submit", signedSubmit(t, solutionNonce))
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	var st spb.Status
	decode(t, resp, &st)
	require.EqualValues(t, codes.AlreadyExists, st.Code)

	resp = postProto(t, srv.URL+"/v1/submit", signedSubmit(t, 0))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRESTVerify(t *testing.T) {
	t.Parallel()
	srv := newRESTServer(t)

	resp := postProto(t, srv.URL+"/v1/verify", &api.VerifyRequest{
		Nonce:    solutionNonce,
		Identity: testKey.Public().(ed25519.PublicKey),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out api.VerifyResponse
	decode(t, resp, &out)
	require.True(t, out.MeetsTarget)
	require.Equal(t, solutionDigest, hex.EncodeToString(out.Digest))
}

func TestRESTMalformedRequest(t *testing.T) {
	t.Parallel()
	srv := newRESTServer(t)

	resp, err := http.Post(srv.URL+"/v1/submit", "application/json", bytes.NewReader([]byte("{")))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var st spb.Status
	decode(t, resp, &st)
	require.EqualValues(t, codes.InvalidArgument, st.Code)
}
