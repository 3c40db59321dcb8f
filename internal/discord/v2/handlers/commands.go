package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/resource"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
)

// CommandAPI is the part of *discordgo.Session that registers commands
type CommandAPI interface {
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
}

// RegisterCommands creates every slash command for appID. An empty guildID
// registers them globally.
func RegisterCommands(api CommandAPI, appID, guildID string) error {
	for _, cmd := range Commands() {
		if _, err := api.ApplicationCommandCreate(appID, guildID, cmd); err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}
	return nil
}

// Commands are the slash commands the bot answers
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		moveCommand(),
		sheetCommand(),
		resourceCommand(),
		worldCommand(),
	}
}

func subcommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     options,
	}
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func intOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func boolOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func withChoices(opt *discordgo.ApplicationCommandOption, choices ...*discordgo.ApplicationCommandOptionChoice) *discordgo.ApplicationCommandOption {
	opt.Choices = choices
	return opt
}

func characterOption() *discordgo.ApplicationCommandOption {
	return stringOption("character", "Character name or id (defaults to your first character)", false)
}

func attributeOption() *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: attr.Label(), Value: string(attr)})
	}
	return withChoices(stringOption("attribute", "Attribute to roll with", true), choices...)
}

func tierOption() *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(rolls.Tiers))
	for _, t := range rolls.Tiers {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: t.Label(), Value: string(t)})
	}
	return withChoices(stringOption("tier", "Override the tier your NV gives", false), choices...)
}

func moveCommand() *discordgo.ApplicationCommand {
	moveOpt := func() *discordgo.ApplicationCommandOption {
		return stringOption("move", "Move name or id", true)
	}
	return &discordgo.ApplicationCommand{
		Name:        "move",
		Description: "Roll and spend moves",
		Options: []*discordgo.ApplicationCommandOption{
			subcommand("roll", "Roll a move",
				moveOpt(), attributeOption(), tierOption(),
				stringOption("modifier", "Flat modifier such as +2 or -1", false),
				characterOption()),
			subcommand("history", "Show your most recent rolls",
				characterOption(),
				intOption("limit", "How many rolls to list", false)),
			subcommand("send", "Send an NPC move, spending its chakra and charges",
				moveOpt(), characterOption()),
			subcommand("reload", "Reload the charges of an NPC move",
				moveOpt(), boolOption("hard", "Arbiter only: reload without paying chakra", false), characterOption()),
		},
	}
}

func sheetCommand() *discordgo.ApplicationCommand {
	kind := withChoices(stringOption("kind", "Player character or NPC", false),
		&discordgo.ApplicationCommandOptionChoice{Name: "Jogador", Value: string(shared.CharacterKindPlayer)},
		&discordgo.ApplicationCommandOptionChoice{Name: "NPC", Value: string(shared.CharacterKindNPC)},
	)

	create := []*discordgo.ApplicationCommandOption{stringOption("name", "Character name", true)}
	for _, attr := range shared.Attributes {
		create = append(create, intOption(string(attr), attr.Label(), false))
	}
	create = append(create, kind)

	statCmd := func(name, description string) *discordgo.ApplicationCommandOption {
		return subcommand(name, description, intOption("value", "New value", true), characterOption())
	}

	return &discordgo.ApplicationCommand{
		Name:        "sheet",
		Description: "Character sheets",
		Options: []*discordgo.ApplicationCommandOption{
			subcommand("create", "Create a character", create...),
			subcommand("show", "Show a character sheet", characterOption()),
			subcommand("list", "List your characters in this server"),
			statCmd("momentum", "Set momentum"),
			statCmd("firewill", "Set Will of Fire"),
			statCmd("chakra", "Set chakra"),
			statCmd("nv", "Set the advantage level"),
			subcommand("condition", "Turn a condition on or off",
				stringOption("name", "Condition name", true),
				boolOption("active", "Whether the condition applies", true),
				characterOption()),
		},
	}
}

func resourceCommand() *discordgo.ApplicationCommand {
	ability := func() *discordgo.ApplicationCommandOption {
		return stringOption("ability", "Ability name or id", true)
	}
	pool := func() *discordgo.ApplicationCommandOption {
		return stringOption("pool", "Resource id", true)
	}
	amount := func() *discordgo.ApplicationCommandOption {
		return intOption("amount", "Amount (defaults to 1)", false)
	}

	fields := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(resource.Fields))
	for _, f := range resource.Fields {
		fields = append(fields, &discordgo.ApplicationCommandOptionChoice{Name: string(f), Value: string(f)})
	}

	return &discordgo.ApplicationCommand{
		Name:        "resource",
		Description: "Ability resources and chakra",
		Options: []*discordgo.ApplicationCommandOption{
			subcommand("show", "Show an ability", ability(), characterOption()),
			subcommand("add", "Add a resource to an ability",
				ability(), stringOption("name", "Resource name", true),
				intOption("per_level", "Maximum gained per ability level", false),
				intOption("default", "Base maximum", false),
				boolOption("show", "Show the resource on the sheet", false),
				characterOption()),
			subcommand("remove", "Remove a resource", ability(), pool(), characterOption()),
			subcommand("set", "Set one field of a resource",
				ability(), pool(),
				withChoices(stringOption("field", "Field to set", true), fields...),
				stringOption("value", "New value", true),
				characterOption()),
			subcommand("inc", "Increase a resource", ability(), pool(), amount(), characterOption()),
			subcommand("dec", "Decrease a resource", ability(), pool(), amount(), characterOption()),
			subcommand("max", "Fill a resource", ability(), pool(), characterOption()),
			subcommand("zero", "Empty a resource", ability(), pool(), characterOption()),
			subcommand("recalc", "Recalculate every maximum of an ability", ability(), characterOption()),
			subcommand("level", "Set an ability level",
				ability(), intOption("level", "New level", true), characterOption()),
			subcommand("chakra", "Change an ability's chakra points",
				ability(), intOption("amount", "Signed change", true), characterOption()),
			subcommand("refill", "Refill an ability's chakra for one point of your chakra",
				ability(), characterOption()),
		},
	}
}

func worldCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "world",
		Description: "World settings for this server",
		Options: []*discordgo.ApplicationCommandOption{
			subcommand("show", "Show the advantage thresholds"),
			subcommand("thresholds", "Arbiter only: change the advantage thresholds",
				intOption("great_disadvantage", "NV at or below which rolls get Desvantagem+", false),
				intOption("disadvantage", "NV at or below which rolls get Desvantagem", false),
				intOption("advantage", "NV at or above which rolls get Vantagem", false),
				intOption("great_advantage", "NV at or above which rolls get Vantagem+", false)),
		},
	}
}
