package handler

import "github.com/bwmarrin/discordgo"

// OptionString returns the named string option's value, or "" when absent.
func OptionString(i *discordgo.Interaction, name string) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			if s, ok := opt.Value.(string); ok {
				return s
			}
		}
	}
	return ""
}

// OptionBool returns the named boolean option's value and whether it was set.
func OptionBool(i *discordgo.Interaction, name string) (value, ok bool) {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			if b, isBool := opt.Value.(bool); isBool {
				return b, true
			}
		}
	}
	return false, false
}

// InvokingUser returns the user behind an interaction, whether it arrived
// from a guild (member) or a DM (user).
func InvokingUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}
