package toyo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yack-order/toyo-discord-bot/config"
)

func TestYotoStoreRejectsBadURL(t *testing.T) {
	resp := YotoStoreHandler(commandRequest("yoto-store", map[string]interface{}{"url": "not-a-url"}))
	assert.Contains(t, content(t, resp), "Please provide a valid URL")
	assert.Nil(t, resp.Followup)
}

func TestYotoStoreWithoutBotTokenFailsUpFront(t *testing.T) {
	req := commandRequest("yoto-store", map[string]interface{}{"url": "https://us.yotoplay.com/products/some-card"})
	req.Cfg = &config.Config{ApplicationID: "1234"}

	resp := YotoStoreHandler(req)

	// No token means no follow-up channel, so the handler must not defer.
	assert.Nil(t, resp.Followup)
	assert.Contains(t, content(t, resp), "bot token is not configured")
}

func TestYotoStoreWithBotTokenDefers(t *testing.T) {
	req := commandRequest("yoto-store", map[string]interface{}{"url": "https://us.yotoplay.com/products/some-card"})
	req.Cfg = &config.Config{ApplicationID: "1234", BotToken: "token"}

	resp := YotoStoreHandler(req)

	require.NotNil(t, resp.Reply)
	assert.NotNil(t, resp.Followup)
}
