package opener

type Config struct {
	// EditorScheme is the URL scheme of the host editor, e.g. "vscode".
	EditorScheme string
}

const defaultEditorScheme = "vscode"

func (c Config) editorScheme() string {
	if c.EditorScheme == "" {
		return defaultEditorScheme
	}
	return c.EditorScheme
}
