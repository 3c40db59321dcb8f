package shared

import "strings"

// Attribute is one of the five attributes a move can be rolled with
type Attribute string

var Attributes = []Attribute{AttributeBody, AttributeAgility, AttributeHeart, AttributeShadow, AttributeCunning}

const (
	AttributeNone    Attribute = ""
	AttributeBody    Attribute = "bod"
	AttributeAgility Attribute = "agl"
	AttributeHeart   Attribute = "hrt"
	AttributeShadow  Attribute = "shd"
	AttributeCunning Attribute = "cun"
)

var attributeLabels = map[Attribute]string{
	AttributeBody:    "Físico",
	AttributeAgility: "Agilidade",
	AttributeHeart:   "Coração",
	AttributeShadow:  "Sombra",
	AttributeCunning: "Astúcia",
}

// Label returns the sheet label for the attribute
func (a Attribute) Label() string {
	if label, ok := attributeLabels[a]; ok {
		return label
	}
	return string(a)
}

// IsValid reports whether a is one of the five attributes
func (a Attribute) IsValid() bool {
	_, ok := attributeLabels[a]
	return ok
}

// ParseAttribute accepts either the short key ("agl") or the sheet label
// ("Agilidade"), case-insensitively.
func ParseAttribute(s string) (Attribute, bool) {
	s = strings.TrimSpace(s)
	for _, attr := range Attributes {
		if strings.EqualFold(s, string(attr)) || strings.EqualFold(s, attr.Label()) {
			return attr, true
		}
	}
	return AttributeNone, false
}
