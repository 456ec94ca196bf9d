package handler

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/yack-order/toyo-discord-bot/config"
	"github.com/yack-order/toyo-discord-bot/db"
)

// Request carries one inbound interaction plus everything a handler is
// allowed to touch. Configuration is threaded through explicitly so handlers
// never read ambient process state.
type Request struct {
	Cfg         *config.Config
	Archive     *db.Archive
	Interaction *discordgo.Interaction
}

// Response is what a handler returns. A non-nil Followup means Reply is only
// a deferred acknowledgment: the router runs Followup in a detached goroutine
// and delivers its result as a follow-up message.
type Response struct {
	Reply         *discordgo.InteractionResponse
	Followup      func() string
	FollowupFlags discordgo.MessageFlags
}

// HandlerFunc handles a single slash-command invocation.
type HandlerFunc func(req *Request) *Response

// Record pairs a command definition with its handler.
type Record struct {
	Definition *discordgo.ApplicationCommand
	Handle     HandlerFunc
}

// commandHandlers maps lowercase command names to records. Populated during
// startup by RegisterHandlers and read-only afterwards.
var commandHandlers = make(map[string]*Record)

// AddCommandHandler registers a handler for a slash command.
func AddCommandHandler(definition *discordgo.ApplicationCommand, handler HandlerFunc) {
	commandHandlers[strings.ToLower(definition.Name)] = &Record{
		Definition: definition,
		Handle:     handler,
	}
}

// Commands returns the registered command definitions sorted by name.
func Commands() []*discordgo.ApplicationCommand {
	defs := make([]*discordgo.ApplicationCommand, 0, len(commandHandlers))
	for _, rec := range commandHandlers {
		defs = append(defs, rec.Definition)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// TextResponse builds an immediate plain-text reply.
func TextResponse(content string, ephemeral bool) *Response {
	data := &discordgo.InteractionResponseData{Content: content}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return &Response{
		Reply: &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: data,
		},
	}
}

// DeferredResponse builds a deferred acknowledgment whose real content is
// produced later by followup.
func DeferredResponse(ephemeral bool, followup func() string) *Response {
	data := &discordgo.InteractionResponseData{}
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
		data.Flags = flags
	}
	return &Response{
		Reply: &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
			Data: data,
		},
		Followup:      followup,
		FollowupFlags: flags,
	}
}

// Dispatch resolves the interaction's command by lowercase name and runs its
// handler. Unknown names and handler panics both come back as structured
// replies; nothing escapes to the platform unhandled.
func Dispatch(req *Request) (resp *Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("handler panic: %v", r)
			resp = TextResponse("There was an error processing your request.", true)
		}
	}()

	name := commandName(req.Interaction)
	rec, ok := commandHandlers[name]
	if !ok {
		log.Printf("unknown command: %q", name)
		return TextResponse("Unknown command: `"+name+"`. Try `/help`.", true)
	}
	return rec.Handle(req)
}

func commandName(i *discordgo.Interaction) string {
	return strings.ToLower(i.ApplicationCommandData().Name)
}

// Router is the HTTP front of the bot: the signed interactions webhook on
// POST / and the unauthenticated dev mirror under /dev/.
type Router struct {
	cfg     *config.Config
	archive *db.Archive
	pubKey  ed25519.PublicKey
	session *discordgo.Session
	mux     *http.ServeMux
}

// New builds the router. A bad or missing public key leaves pubKey nil, which
// rejects every webhook request; a missing bot token only disables follow-up
// delivery.
func New(cfg *config.Config, archive *db.Archive) *Router {
	rt := &Router{cfg: cfg, archive: archive, mux: http.NewServeMux()}

	if key, err := hex.DecodeString(cfg.PublicKey); err == nil && len(key) == ed25519.PublicKeySize {
		rt.pubKey = ed25519.PublicKey(key)
	} else {
		log.Println("Warning: DISCORD_PUBLIC_KEY missing or invalid; webhook requests will be rejected")
	}

	if cfg.BotToken != "" {
		session, err := discordgo.New("Bot " + cfg.BotToken)
		if err != nil {
			log.Printf("error creating Discord session: %v", err)
		} else {
			rt.session = session
		}
	}

	rt.mux.HandleFunc("POST /{$}", rt.handleWebhook)
	rt.mux.HandleFunc("GET /{$}", rt.handleRoot)
	rt.mux.HandleFunc("GET /dev/{command}", rt.handleDev)
	return rt
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mux.ServeHTTP(w, r)
}

func (rt *Router) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("👋 " + rt.cfg.ApplicationID))
}

// handleWebhook is the main route for all requests sent from Discord.
func (rt *Router) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if rt.pubKey == nil || !discordgo.VerifyInteraction(r, rt.pubKey) {
		http.Error(w, "Bad request signature.", http.StatusUnauthorized)
		return
	}

	var interaction discordgo.Interaction
	if err := json.NewDecoder(r.Body).Decode(&interaction); err != nil {
		log.Printf("error decoding interaction: %v", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	switch interaction.Type {
	case discordgo.InteractionPing:
		// Sent during the webhook handshake when the endpoint is configured
		// in the developer portal.
		writeJSON(w, http.StatusOK, &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong})

	case discordgo.InteractionApplicationCommand:
		resp := Dispatch(&Request{Cfg: rt.cfg, Archive: rt.archive, Interaction: &interaction})
		writeJSON(w, http.StatusOK, resp.Reply)
		if resp.Followup != nil {
			go rt.deliverFollowup(&interaction, resp)
		}

	default:
		log.Printf("unsupported interaction type: %d", interaction.Type)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unknown Type"})
	}
}

// deliverFollowup runs a deferred handler's remaining work and posts the
// result as a follow-up message. Failures still reach the user as a generic
// error follow-up rather than being dropped.
func (rt *Router) deliverFollowup(interaction *discordgo.Interaction, resp *Response) {
	content := "There was an error processing your request."
	func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("followup panic: %v", r)
			}
		}()
		content = resp.Followup()
	}()

	if rt.session == nil {
		log.Println("Warning: DISCORD_TOKEN not configured; dropping follow-up")
		return
	}
	_, err := rt.session.FollowupMessageCreate(interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   resp.FollowupFlags,
	})
	if err != nil {
		log.Printf("error sending follow-up: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("error writing response: %v", err)
	}
}
