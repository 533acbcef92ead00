package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/fyyur/internal/projection"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgCategoriesFetched MsgKind = iota
	MsgQuestionFetched
)

type categoriesPayload struct {
	categories projection.Categories
	err        error
}

type questionPayload struct {
	question *projection.Question
	err      error
}

// categoriesFetchedMsg is the constructor for [MsgCategoriesFetched]
func categoriesFetchedMsg(categories projection.Categories, err error) Msg {
	return Msg{kind: MsgCategoriesFetched, data: categoriesPayload{categories, err}}
}

// questionFetchedMsg is the constructor for [MsgQuestionFetched]
func questionFetchedMsg(question *projection.Question, err error) Msg {
	return Msg{kind: MsgQuestionFetched, data: questionPayload{question, err}}
}
