package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/naruto2d6-discord/internal/discord/v2/core"
	domainCharacter "github.com/KirkDiggler/naruto2d6-discord/internal/domain/character"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/rolls"
	"github.com/KirkDiggler/naruto2d6-discord/internal/domain/shared"
	moveService "github.com/KirkDiggler/naruto2d6-discord/internal/services/move"
)

// Custom ID actions shared by the move views and the move handler
const (
	actionReroll = "reroll"
	actionAdjust = "adjust"
	actionSend   = "send"
	actionReload = "reload"
)

// Adjust form inputs
const (
	inputAction     = "action"
	inputChallengeA = "challenge_a"
	inputChallengeB = "challenge_b"
)

var rerollButtons = []struct {
	mode  rolls.RerollMode
	label string
	emoji string
	style discordgo.ButtonStyle
}{
	{rolls.RerollFree, "Reroll", "🎲", discordgo.SecondaryButton},
	{rolls.RerollMomentum, "Burn momentum", "🔥", discordgo.DangerButton},
	{rolls.RerollFireWill, "Will of Fire", "🍃", discordgo.SuccessButton},
}

var rerollModeLabels = map[rolls.RerollMode]string{
	rolls.RerollFree:     "free reroll",
	rolls.RerollMomentum: "momentum",
	rolls.RerollFireWill: "Will of Fire",
}

// title capitalises player-typed names without lowering acronyms. A Caser
// keeps state, so one is made per call.
func title(s string) string {
	return cases.Title(language.BrazilianPortuguese, cases.NoLower).String(s)
}

func resultColor(r rolls.Result) int {
	switch r {
	case rolls.ResultCriticalSuccess:
		return builders.ColorCrit
	case rolls.ResultFullSuccess:
		return builders.ColorSuccess
	case rolls.ResultPartialSuccess:
		return builders.ColorPartial
	default:
		return builders.ColorError
	}
}

// RollEmbed renders a move record. mv may be nil when the move was removed
// from the sheet after the roll.
func RollEmbed(record *rolls.Record, mv *domainCharacter.Move) *discordgo.MessageEmbed {
	description := fmt.Sprintf("**%s**", record.Outcome.Result.Label())
	if mv != nil {
		if text := mv.ResultText(record.Outcome.Result); text != "" {
			description += "\n" + text
		}
	}

	cleared := [2]bool{}
	if record.Reroll != nil {
		cleared = [2]bool{record.Reroll.ClearedA, record.Reroll.ClearedB}
	}

	embed := builders.NewEmbed().
		Title(fmt.Sprintf("%s: %s", record.CharacterName, title(record.MoveName))).
		Description(description).
		Color(resultColor(record.Outcome.Result)).
		Field("Ação", formatAction(record), true).
		Field("Desafio A", formatChallenge(record.ChallengeADice, record.Outcome.ChallengeATotal, cleared[0]), true).
		Field("Desafio B", formatChallenge(record.ChallengeBDice, record.Outcome.ChallengeBTotal, cleared[1]), true).
		Field("Atributo", formatAttribute(record), true).
		Field("Vantagem", formatTier(record), true).
		Field("Notas", strings.Join(record.Notes, "\n"), false).
		Timestamp(record.UpdatedAt)

	footer := "roll " + record.ID
	if record.Reroll != nil {
		footer += " · rerolled with " + rerollModeLabels[record.Reroll.Mode]
	}
	return embed.Footer(footer).Build()
}

func formatAction(record *rolls.Record) string {
	s := formatDice(record.ActionDice)
	if bonus := record.ActionBonus(); bonus != 0 {
		s += fmt.Sprintf(" %+d", bonus)
	}
	return fmt.Sprintf("%s → **%d**", s, record.Outcome.ActionTotal)
}

func formatChallenge(dice []int, total int, cleared bool) string {
	if cleared {
		return fmt.Sprintf("~~%s~~ cleared", formatDice(dice))
	}
	return fmt.Sprintf("%s → **%d**", formatDice(dice), total)
}

func formatDice(dice []int) string {
	parts := make([]string, len(dice))
	for i, d := range dice {
		parts[i] = strconv.Itoa(d)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatAttribute(record *rolls.Record) string {
	s := fmt.Sprintf("%s %+d", record.Attribute.Label(), record.AttributeValue)
	if record.ConditionBonus != 0 {
		s += fmt.Sprintf(", conditions %+d", record.ConditionBonus)
	}
	if record.FlatModifier != 0 {
		s += fmt.Sprintf(", modifier %+d", record.FlatModifier)
	}
	return s
}

func formatTier(record *rolls.Record) string {
	if record.AdvantageLevel != nil {
		return fmt.Sprintf("%s (NV %d)", record.Tier.Label(), *record.AdvantageLevel)
	}
	return record.Tier.Label()
}

// RollComponents are the reroll buttons the options allow plus the arbiter
// adjust button, which every record keeps.
func RollComponents(ids *core.CustomIDBuilder, record *rolls.Record, opts moveService.Options) []discordgo.MessageComponent {
	offered := map[rolls.RerollMode]bool{
		rolls.RerollFree:     opts.Free,
		rolls.RerollMomentum: opts.Momentum,
		rolls.RerollFireWill: opts.FireWill,
	}

	cb := builders.NewComponentBuilder(ids)
	for _, b := range rerollButtons {
		if offered[b.mode] {
			cb.EmojiButton(b.label, b.emoji, b.style, actionReroll, record.ID, string(b.mode))
		}
	}
	cb.EmojiButton("Adjust", "⚖️", discordgo.SecondaryButton, actionAdjust, record.ID)
	return cb.Build()
}

// rollResponse posts or updates a roll message
func rollResponse(ids *core.CustomIDBuilder, record *rolls.Record, mv *domainCharacter.Move, opts moveService.Options) *core.Response {
	return core.NewEmbedResponse(RollEmbed(record, mv)).
		WithComponents(RollComponents(ids, record, opts)...)
}

// AdjustModal asks an arbiter for the three modifiers
func AdjustModal(ids *core.CustomIDBuilder, record *rolls.Record) *core.Response {
	return core.NewModalResponse(
		ids.Modal(actionAdjust, record.ID),
		"Adjust result",
		builders.TextInputRow(inputAction, "Action", "+1", "", false),
		builders.TextInputRow(inputChallengeA, "Challenge A", "-2", "", false),
		builders.TextInputRow(inputChallengeB, "Challenge B", "0", "", false),
	)
}

func kindLabel(kind shared.CharacterKind) string {
	if kind == shared.CharacterKindNPC {
		return "NPC"
	}
	return "Jogador"
}

func formatMeter(m shared.Meter) string {
	return fmt.Sprintf("%d / %d", m.Value, m.Max)
}

// SheetEmbed renders a character sheet. The NV is shown with the tier the
// guild thresholds give it.
func SheetEmbed(char *domainCharacter.Character, thresholds rolls.Thresholds) *discordgo.MessageEmbed {
	attrs := make([]string, 0, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		line := fmt.Sprintf("%s: **%+d**", attr.Label(), char.AttributeValue(attr))
		if base := char.Attributes[attr]; base != char.AttributeValue(attr) {
			line += fmt.Sprintf(" (base %+d)", base)
		}
		attrs = append(attrs, line)
	}

	moves := make([]string, 0, len(char.Moves))
	for _, mv := range char.Moves {
		line := fmt.Sprintf("`%s` %s", mv.ID, title(mv.Name))
		if mv.UsesEnabled() {
			line += fmt.Sprintf(" (%d / %d)", mv.NPC.Uses.Current, mv.NPC.Uses.Max)
		}
		moves = append(moves, line)
	}

	abilities := make([]string, 0, len(char.Abilities))
	for _, a := range char.Abilities {
		abilities = append(abilities, fmt.Sprintf("`%s` %s · nível %d (%s)", a.ID, title(a.Name), a.Level, a.Rank()))
	}

	conditions := make([]string, 0, len(char.Conditions))
	for _, c := range char.Conditions {
		mark := "⬜"
		if c.Active {
			mark = "✅"
		}
		conditions = append(conditions, mark+" "+c.Name)
	}

	nv := char.AdvantageLevel.Value
	return builders.NewEmbed().
		Title(char.Name).
		Author(kindLabel(char.Kind)).
		Color(builders.ColorPrimary).
		Field("Atributos", strings.Join(attrs, "\n"), false).
		Field("Momentum", formatMeter(char.Momentum), true).
		Field("Vontade do Fogo", formatMeter(char.FireWill), true).
		Field("Chakra", formatMeter(char.Chakra), true).
		Field("NV", fmt.Sprintf("%+d (%s)", nv, thresholds.TierFor(nv).Label()), true).
		Field("Movimentos", strings.Join(moves, "\n"), false).
		Field("Habilidades", strings.Join(abilities, "\n"), false).
		Field("Condições", strings.Join(conditions, "\n"), false).
		Footer("id " + char.ID).
		Build()
}

// AbilityEmbed renders one ability with its chakra reserve and pools
func AbilityEmbed(char *domainCharacter.Character, ability *domainCharacter.Ability) *discordgo.MessageEmbed {
	description := ability.Description
	for _, d := range ability.UnlockedDescriptions() {
		description += fmt.Sprintf("\n**Nível %d:** %s", d.Level, d.Description)
	}

	var chakra string
	if ability.Chakra.Enabled {
		chakra = fmt.Sprintf("%d / %d", ability.Chakra.Points, ability.Chakra.Max)
	}

	pools := make([]string, 0, len(ability.Resources))
	for _, p := range ability.Resources {
		line := fmt.Sprintf("`%s` %s: **%d / %d** (%+d per level, base %d)",
			p.ID, p.Name, p.Value, p.MaxValue, p.ValuePerLevel, p.DefaultValue)
		if !p.Show {
			line += " · hidden"
		}
		pools = append(pools, line)
	}

	return builders.NewEmbed().
		Title(fmt.Sprintf("%s: %s", char.Name, title(ability.Name))).
		Description(strings.TrimSpace(description)).
		Color(builders.ColorInfo).
		Field("Nível", fmt.Sprintf("%d (%s)", ability.Level, ability.Rank()), true).
		Field("Chakra", chakra, true).
		Field("Recursos", strings.Join(pools, "\n"), false).
		Footer("ability " + ability.ID).
		Build()
}

// NPCMoveEmbed is the card posted when an NPC move is sent or reloaded
func NPCMoveEmbed(char *domainCharacter.Character, mv *domainCharacter.Move) *discordgo.MessageEmbed {
	eb := builders.NewEmbed().
		Title(fmt.Sprintf("%s: %s", char.Name, title(mv.Name))).
		Description(mv.RenderDescription()).
		Color(builders.ColorPrimary)

	if mv.NPC != nil {
		if mv.NPC.Level > 0 {
			eb.Field("Nível", strconv.Itoa(mv.NPC.Level), true)
		}
		if mv.NPC.ChakraCost > 0 {
			eb.Field("Custo de chakra", strconv.Itoa(mv.NPC.ChakraCost), true)
		}
	}
	if mv.UsesEnabled() {
		eb.Field("Charges", fmt.Sprintf("%d / %d", mv.NPC.Uses.Current, mv.NPC.Uses.Max), true)
	}
	return eb.Field("Chakra", formatMeter(char.Chakra), true).Build()
}

// NPCMoveComponents are the send and reload buttons of an NPC move card.
// Ids too long for a custom ID get no buttons; the slash commands still work.
func NPCMoveComponents(ids *core.CustomIDBuilder, char *domainCharacter.Character, mv *domainCharacter.Move) []discordgo.MessageComponent {
	for _, action := range []string{actionSend, actionReload} {
		if _, err := core.NewCustomID(ids.Domain(), action).WithTarget(char.ID).WithArgs(mv.ID).Encode(); err != nil {
			return nil
		}
	}

	cb := builders.NewComponentBuilder(ids).
		EmojiButton("Send", "🌀", discordgo.PrimaryButton, actionSend, char.ID, mv.ID)
	if mv.UsesEnabled() {
		cb.EmojiButton("Reload", "🔄", discordgo.SecondaryButton, actionReload, char.ID, mv.ID)
	}
	return cb.Build()
}

// noticeResponse tells only the acting player why nothing changed
func noticeResponse(n *shared.Notice) *core.Response {
	prefix := "ℹ️"
	if n.Level != shared.NoticeInfo {
		prefix = "⚠️"
	}
	return core.NewEphemeralResponse(prefix + " " + n.Message)
}
