package util

// Envelope is the JSON body shape every handler responds with.
type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}

// Items wraps a listing together with its length.
func Items[T any](items []T) Envelope {
	if items == nil {
		items = []T{}
	}
	return Envelope{"items": items, "count": len(items)}
}
