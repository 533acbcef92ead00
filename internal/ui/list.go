package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/fyyur/internal/quiz"
)

var _ list.Item = categoryItem{}

// categoryItem wraps a trivia category to implement [list.Item].
type categoryItem struct {
	id    int64
	label string
}

func allCategories() categoryItem {
	return categoryItem{id: quiz.AllCategories, label: "All categories"}
}

func (i categoryItem) FilterValue() string { return i.label }
func (i categoryItem) Title() string       { return i.label }
func (i categoryItem) Description() string {
	if i.id == quiz.AllCategories {
		return "Questions drawn from every category"
	}
	return fmt.Sprintf("Category #%d", i.id)
}
