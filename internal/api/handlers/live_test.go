package handlers_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eronmosele95/electrical-dashboard/internal/api/models"
)

func TestLiveSocket(t *testing.T) {
	router := newTestRouter(t)
	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/live"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	defer conn.Close()

	var msg models.LiveMessage

	// A valid request answers with a result.
	require.NoError(t, conn.WriteJSON(models.CalculateRequest{Voltage: 480, Current: 100, Phase: 3}))
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "result", msg.Type)
	require.NotNil(t, msg.Result)
	assert.InDelta(t, 83.14, msg.Result.ApparentPowerKVA, 0.01)

	// Out-of-range inputs answer with the validator messages.
	require.NoError(t, conn.WriteJSON(models.CalculateRequest{Voltage: 0, Current: 100}))
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "validation_error", msg.Type)
	assert.Contains(t, msg.Errors, "Voltage must be a number greater than 0")

	// A malformed request answers with an error message.
	require.NoError(t, conn.WriteJSON(models.CalculateRequest{Voltage: 120, Current: 10, Phase: 2}))
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Message, "invalid phase 2")

	// The connection survives error replies.
	require.NoError(t, conn.WriteJSON(models.CalculateRequest{Voltage: 120, Current: 10}))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "result", msg.Type)
}
