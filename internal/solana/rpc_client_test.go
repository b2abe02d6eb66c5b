package solana

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_GetAccountInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "getAccountInfo", req.Method)

		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"value":{
			"lamports":1461600,
			"owner":"TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
			"data":["QUJD","base64"],
			"executable":false,
			"rentEpoch":361
		}}}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)

	info, err := client.GetAccountInfo(context.Background(), "So11111111111111111111111111111111111111112")
	require.NoError(t, err)
	require.NotNil(t, info)

	assert.Equal(t, uint64(1461600), info.Lamports)
	assert.Equal(t, TokenProgramID, info.Owner)
	assert.Equal(t, "QUJD", info.Data)
	assert.False(t, info.Executable)
}

func TestHTTPClient_GetAccountInfoMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"value":null}}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)

	info, err := client.GetAccountInfo(context.Background(), "So11111111111111111111111111111111111111112")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestHTTPClient_GetTokenBalances(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "getTokenAccountsByOwner", req.Method)
		require.Len(t, req.Params, 3)

		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"value":[
			{"account":{"data":{"parsed":{"info":{
				"mint":"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
				"tokenAmount":{"uiAmount":12.5,"decimals":6}
			}}}}},
			{"account":{"data":{"parsed":{"info":{
				"mint":"So11111111111111111111111111111111111111112",
				"tokenAmount":{"uiAmount":0.25,"decimals":9}
			}}}}}
		]}}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)

	balances, err := client.GetTokenBalances(context.Background(), "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU")
	require.NoError(t, err)
	require.Len(t, balances, 2)

	assert.Equal(t, "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v", balances[0].Mint)
	assert.Equal(t, 12.5, balances[0].Amount)
	assert.Equal(t, 6, balances[0].Decimals)
	assert.Equal(t, 0.25, balances[1].Amount)
}

func TestHTTPClient_RetriesRateLimit(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":42}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, WithRetryDelay(time.Millisecond))

	slot, err := client.GetSlot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), slot)
	assert.Equal(t, 2, attempts)
}

func TestHTTPClient_RPCErrorNotRetried(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"Invalid param"}}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, WithRetryDelay(time.Millisecond))

	_, err := client.GetSlot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid param")
	assert.Equal(t, 1, attempts)
}
