package models

import (
	"fmt"
	"time"
)

// GameType tags the three game modes served by the backend.
type GameType string

const (
	GameTrivia    GameType = "trivia"
	GameAdventure GameType = "adventure"
	GameMarket    GameType = "market"
)

// Valid reports whether the tag names a known game mode.
func (t GameType) Valid() bool {
	switch t {
	case GameTrivia, GameAdventure, GameMarket:
		return true
	}
	return false
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type TriviaQuestion struct {
	Question         string   `json:"question"`
	Options          []string `json:"options"`
	CorrectAnswer    int      `json:"correct_answer"`
	Explanation      string   `json:"explanation"`
	Difficulty       string   `json:"difficulty,omitempty"`
	IntelligenceType string   `json:"intelligence_type,omitempty"`
}

type AdventureChoice struct {
	Text      string `json:"text"`
	NextScene int    `json:"next_scene,omitempty"`
	IsCorrect bool   `json:"is_correct,omitempty"`
	Points    int    `json:"points,omitempty"`
	Feedback  string `json:"feedback,omitempty"`
}

type AdventureScene struct {
	SceneNumber   int               `json:"scene_number"`
	Description   string            `json:"description"`
	Choices       []AdventureChoice `json:"choices"`
	LearningPoint string            `json:"learning_point"`
}

type AdventureStory struct {
	Title        string           `json:"title"`
	Introduction string           `json:"introduction"`
	Scenes       []AdventureScene `json:"scenes"`
	Conclusion   string           `json:"conclusion"`
	TotalScenes  int              `json:"total_scenes,omitempty"`
}

type MarketItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image,omitempty"`
	Price    float64 `json:"price,omitempty"`
	Category string  `json:"category,omitempty"`
}

type MarketMission struct {
	MissionID        int          `json:"mission_id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	TaskType         string       `json:"task_type,omitempty"`
	Items            []MarketItem `json:"items"`
	CorrectItems     []string     `json:"correct_items"`
	Points           int          `json:"points"`
	Hint             string       `json:"hint,omitempty"`
	IntelligenceType string       `json:"intelligence_type,omitempty"`
}

// GameContent is the variant payload embedded in a session. Exactly one of
// the mode fields is populated, selected by GameType; callers dispatch with
// a single switch over the tag.
type GameContent struct {
	Topic           string           `json:"topic"`
	GameType        GameType         `json:"game_type"`
	Difficulty      string           `json:"difficulty,omitempty"`
	TriviaQuestions []TriviaQuestion `json:"trivia_questions,omitempty"`
	AdventureStory  *AdventureStory  `json:"adventure_story,omitempty"`
	MarketMissions  []MarketMission  `json:"market_missions,omitempty"`
	AgeRange        string           `json:"age_range,omitempty"`
	LocalContext    string           `json:"local_context,omitempty"`
}

// Validate checks that the payload present matches the game-type tag.
func (c GameContent) Validate() error {
	switch c.GameType {
	case GameTrivia:
		if len(c.TriviaQuestions) == 0 {
			return fmt.Errorf("trivia content has no questions")
		}
	case GameAdventure:
		if c.AdventureStory == nil || len(c.AdventureStory.Scenes) == 0 {
			return fmt.Errorf("adventure content has no scenes")
		}
	case GameMarket:
		if len(c.MarketMissions) == 0 {
			return fmt.Errorf("market content has no missions")
		}
	default:
		return fmt.Errorf("unknown game type %q", c.GameType)
	}
	return nil
}

type GameSession struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Topic       string      `json:"topic"`
	GameType    GameType    `json:"game_type"`
	Content     GameContent `json:"content"`
	Score       int         `json:"score"`
	Completed   bool        `json:"completed"`
	StartedAt   time.Time   `json:"started_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
}

// Answer records one step of play. The identifier fields in use depend on
// the game mode: trivia fills QuestionIndex/SelectedAnswer, adventure fills
// SceneNumber/ChoiceIndex, market fills MissionID/SelectedItems. The list is
// sent to the backend verbatim on submission.
type Answer struct {
	QuestionIndex  int      `json:"question_index,omitempty"`
	SelectedAnswer *int     `json:"selected_answer,omitempty"`
	SceneNumber    int      `json:"scene_number,omitempty"`
	ChoiceIndex    int      `json:"choice_index,omitempty"`
	MissionID      int      `json:"mission_id,omitempty"`
	SelectedItems  []string `json:"selected_items,omitempty"`
	IsCorrect      bool     `json:"is_correct"`
	Points         int      `json:"points"`
}

type GameResult struct {
	SessionID            string         `json:"session_id"`
	Topic                string         `json:"topic"`
	GameType             GameType       `json:"game_type"`
	Score                int            `json:"score"`
	MaxScore             int            `json:"max_score"`
	CoinsEarned          int            `json:"coins_earned"`
	Percentage           float64        `json:"percentage"`
	Feedback             string         `json:"feedback"`
	IntelligenceAnalysis map[string]int `json:"intelligence_analysis"`
	Recommendations      []string       `json:"recommendations"`
}
