package shared

// CharacterKind separates player characters from NPCs; NPC moves spend
// chakra and charges instead of being rolled.
type CharacterKind string

const (
	CharacterKindPlayer CharacterKind = "player"
	CharacterKindNPC    CharacterKind = "npc"
)
