package toyo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yack-order/toyo-discord-bot/config"
)

func TestPing(t *testing.T) {
	resp := PingHandler(commandRequest("ping", nil))
	assert.Equal(t, "Pong!", content(t, resp))
}

func TestInviteBuildsOAuthURL(t *testing.T) {
	req := commandRequest("invite", nil)
	req.Cfg = &config.Config{ApplicationID: "123456789"}

	resp := InviteHandler(req)

	assert.Equal(t,
		"https://discord.com/oauth2/authorize?client_id=123456789&scope=applications.commands",
		content(t, resp))
}

func TestUserEchoesInvoker(t *testing.T) {
	resp := UserHandler(commandRequest("user", nil))
	got := content(t, resp)
	assert.Contains(t, got, "username: tester")
	assert.Contains(t, got, "id: 42")
}
