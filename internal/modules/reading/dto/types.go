package dto

type BookOutput struct {
	Title    string `json:"title"`
	Progress int    `json:"progress"`
	Pages    int    `json:"pages"`
	Current  bool   `json:"current"`
}

type ReadingOutput struct {
	Source  string      `json:"source"`
	State   string      `json:"state"`
	Book    *BookOutput `json:"book"`
	Message string      `json:"message,omitempty"`
}
