package todo

// Task is a single TODO item as exchanged with the API.
//
// Task is a plain value. Methods that "change" a task return a modified copy
// and leave the receiver untouched.
type Task struct {
	UserID    string `json:"userId"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// WithTitle returns a copy of the task with the given title.
func (t Task) WithTitle(title string) Task {
	t.Title = title
	return t
}

// WithCompleted returns a copy of the task with the given completion flag.
func (t Task) WithCompleted(completed bool) Task {
	t.Completed = completed
	return t
}

// Unit is the success payload of operations that return no data.
type Unit struct{}

// wireTask is the decoding shape of a task. Pointer fields let the decoder
// tell a missing or null key apart from a zero value.
type wireTask struct {
	UserID    *string
	ID        *string
	Title     *string
	Completed *bool
}

// wireField binds a JSON key to the wireTask field it decodes into.
type wireField struct {
	key  string
	dest interface{}
}

func (w *wireTask) fields() []wireField {
	return []wireField{
		{"userId", &w.UserID},
		{"id", &w.ID},
		{"title", &w.Title},
		{"completed", &w.Completed},
	}
}

// newTaskRequest is the JSON request body for creating a task. The server
// assigns the id, so it is never sent.
type newTaskRequest struct {
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
