package gateway

import (
	"grimworks/quartermaster/internal/access"
	"grimworks/quartermaster/internal/command"
)

// Builtins is the public enumeration over the host server's native
// command set. The game server executes these itself; the bridge only
// advertises them through help.
type Builtins struct{}

var _ command.BuiltinSource = Builtins{}

func (Builtins) EnumerateBuiltins() ([]command.BuiltinCommand, error) {
	list := make([]command.BuiltinCommand, len(builtinTable))
	copy(list, builtinTable)
	return list, nil
}

// Staff-only masks mirror how the server gates its console commands.
const (
	maskStaff = access.RightGM | access.RightOverseer | access.RightModerator | access.RightAdmin
	maskMod   = access.RightModerator | access.RightAdmin
)

var builtinTable = []command.BuiltinCommand{
	{
		Name:        "players",
		Mask:        access.RightNone,
		Description: "List the players connected to the server",
		Help:        "Usage: /players\nLists every connected player and their ping.",
	},
	{
		Name:        "roll",
		Mask:        access.RightNone,
		Description: "Roll a dice in chat",
		Help:        "Usage: /roll <sides>\nRolls a dice visible to everyone nearby.",
	},
	{
		Name:        "card",
		Mask:        access.RightNone,
		Description: "Draw a card in chat",
		Help:        "Usage: /card\nDraws a random card visible to everyone nearby.",
	},
	{
		Name:        "invisible",
		Mask:        maskStaff,
		Description: "Toggle invisibility for a staff member",
		Help:        "Usage: /invisible [player] [-true|-false]\nWithout arguments, toggles your own invisibility.",
	},
	{
		Name:        "teleportto",
		Mask:        maskStaff,
		Description: "Teleport to coordinates",
		Help:        "Usage: /teleportto <x,y,z>\nTeleports you to the given world coordinates.",
	},
	{
		Name:        "kick",
		Mask:        maskMod,
		Description: "Kick a player from the server",
		Help:        "Usage: /kick <player> [-r reason]\nDisconnects the player with an optional reason.",
	},
	{
		Name:        "mute",
		Mask:        maskMod,
		Description: "Mute a player in chat",
		Help:        "Usage: /mute <player>\nThe player can no longer write in global chat.",
	},
	{
		Name:        "ban",
		Mask:        access.RightAdmin,
		Description: "Ban a player from the server",
		Help:        "Usage: /ban <player> [-ip] [-r reason]\nBans the player, optionally by IP address.",
	},
	{
		Name:        "save",
		Mask:        access.RightAdmin,
		Description: "Save the current world state",
		Help:        "Usage: /save\nForces an immediate world save.",
	},
	{
		Name:        "setaccesslevel",
		Mask:        access.RightAdmin,
		Description: "Change a player's access level",
		Help:        "Usage: /setaccesslevel <player> <level>\nLevels: observer, gm, overseer, moderator, admin.",
	},
}
