// Package ui implements a terminal quiz player using bubbletea's Elm architecture.
//
// The player walks through a small set of views:
//  1. [CategoryView] : Pick a category (or all of them)
//  2. [QuestionView] : Read a question and type an answer
//  3. [FeedbackView] : See whether the answer was right
//  4. [ScoreView] : Final score once the round limit is reached or the category runs dry
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// Questions come from a [Source], normally a Trivia API client, so every fetch runs as a [tea.Cmd] off the update loop.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, r, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
