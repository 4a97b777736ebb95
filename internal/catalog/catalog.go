// Package catalog holds the static display catalogues: avatars, suggested
// topics, intelligence types, and per-mode labels.
package catalog

import "github.com/yachai/yachai-cli/internal/models"

type Avatar struct {
	ID    string
	Name  string
	Emoji string
}

var Avatars = []Avatar{
	{ID: "cat", Name: "Gatito", Emoji: "🐱"},
	{ID: "dog", Name: "Perrito", Emoji: "🐶"},
	{ID: "fox", Name: "Zorro", Emoji: "🦊"},
	{ID: "lion", Name: "León", Emoji: "🦁"},
	{ID: "panda", Name: "Panda", Emoji: "🐼"},
	{ID: "koala", Name: "Koala", Emoji: "🐨"},
	{ID: "robot", Name: "Robot", Emoji: "🤖"},
	{ID: "alien", Name: "Alien", Emoji: "👽"},
	{ID: "unicorn", Name: "Unicornio", Emoji: "🦄"},
	{ID: "dragon", Name: "Dragón", Emoji: "🐉"},
}

// AvatarByID returns the avatar for an id, or a neutral fallback so unknown
// ids from the backend still render.
func AvatarByID(id string) Avatar {
	for _, a := range Avatars {
		if a.ID == id {
			return a
		}
	}
	return Avatar{ID: id, Name: id, Emoji: "🙂"}
}

type Topic struct {
	Title    string
	Category string
	Emoji    string
}

var SuggestedTopics = []Topic{
	{Title: "El Ciclo del Agua", Category: "Ciencias", Emoji: "💧"},
	{Title: "Animales del Perú", Category: "Ciencias", Emoji: "🦙"},
	{Title: "La Independencia del Perú", Category: "Historia", Emoji: "🇵🇪"},
	{Title: "Matemáticas Divertidas", Category: "Matemáticas", Emoji: "🔢"},
	{Title: "El Sistema Solar", Category: "Ciencias", Emoji: "🌍"},
	{Title: "Reciclaje y Ambiente", Category: "Ciencias", Emoji: "♻️"},
	{Title: "Cultura Inca", Category: "Historia", Emoji: "🏛️"},
	{Title: "Plantas del Perú", Category: "Ciencias", Emoji: "🌿"},
}

type Intelligence struct {
	ID          string
	Name        string
	Description string
	Emoji       string
}

var Intelligences = []Intelligence{
	{ID: "linguistic", Name: "Lingüística", Description: "Habilidad con palabras y lenguaje", Emoji: "📚"},
	{ID: "logical_mathematical", Name: "Lógico-Matemática", Description: "Razonamiento lógico y números", Emoji: "🔢"},
	{ID: "spatial", Name: "Espacial", Description: "Pensamiento visual y espacial", Emoji: "🎨"},
	{ID: "naturalistic", Name: "Naturalista", Description: "Conexión con la naturaleza", Emoji: "🌿"},
	{ID: "interpersonal", Name: "Interpersonal", Description: "Habilidades sociales", Emoji: "👥"},
}

// IntelligenceByID returns the catalogue entry for an id; unknown ids fall
// back to logical-mathematical, matching the original client.
func IntelligenceByID(id string) Intelligence {
	for _, i := range Intelligences {
		if i.ID == id {
			return i
		}
	}
	return Intelligences[1]
}

type GameLabel struct {
	Name  string
	Emoji string
}

// GameTypeLabel maps a game-type tag to its display label.
func GameTypeLabel(t models.GameType) GameLabel {
	switch t {
	case models.GameTrivia:
		return GameLabel{Name: "Trivia", Emoji: "🧩"}
	case models.GameAdventure:
		return GameLabel{Name: "Aventura", Emoji: "🏕️"}
	case models.GameMarket:
		return GameLabel{Name: "Mercadito", Emoji: "🛒"}
	default:
		return GameLabel{Name: string(t), Emoji: "🎮"}
	}
}

type DifficultyLabel struct {
	Name  string
	Stars string
}

// DifficultyLabelFor maps a difficulty tag to its display label, defaulting
// to medium for unknown tags.
func DifficultyLabelFor(d models.Difficulty) DifficultyLabel {
	switch d {
	case models.DifficultyEasy:
		return DifficultyLabel{Name: "Fácil", Stars: "⭐"}
	case models.DifficultyHard:
		return DifficultyLabel{Name: "Difícil", Stars: "⭐⭐⭐"}
	default:
		return DifficultyLabel{Name: "Medio", Stars: "⭐⭐"}
	}
}
