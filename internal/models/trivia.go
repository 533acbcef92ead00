package models

var (
	_ Model = (*Category)(nil)
	_ Model = (*Question)(nil)
)

// Category labels a group of trivia questions.
type Category struct {
	ID   int64
	Type string `validate:"required"`
}

func (c *Category) Key() int64      { return c.ID }
func (c *Category) Validate() error { return check(c) }

// Question is a trivia question with its answer.
type Question struct {
	ID         int64
	Question   string `validate:"required"`
	Answer     string `validate:"required"`
	CategoryID int64  `validate:"gt=0"`
	Difficulty int    `validate:"min=1,max=5"`
}

func (q *Question) Key() int64      { return q.ID }
func (q *Question) Validate() error { return check(q) }
