package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// messageContent содержимое ответа модели.
// Upstream возвращает content в трёх формах: null, строка или массив разнородных
// элементов. Все три сводятся к одной строке при декодировании.
type messageContent struct {
	text string
}

func (c *messageContent) Text() string {
	return c.text
}

func (c *messageContent) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		c.text = ""
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("decode content string: %w", err)
		}
		c.text = s
		return nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return fmt.Errorf("decode content items: %w", err)
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, itemText(item))
		}
		c.text = strings.Join(parts, " ")
		return nil
	default:
		c.text = genericText(trimmed)
		return nil
	}
}

// itemText извлекает текст одного элемента массива content.
// Поля пробуются по приоритету: "text", затем "content"; если ни одно не подошло,
// берётся обобщённое строковое представление элемента.
func itemText(raw json.RawMessage) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err == nil {
		for _, name := range []string{"text", "content"} {
			value, ok := fields[name]
			if !ok {
				continue
			}
			var s string
			if err := json.Unmarshal(value, &s); err == nil {
				return s
			}
		}
	}
	return genericText(raw)
}

func genericText(raw json.RawMessage) string {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return string(raw)
	}
	return fmt.Sprint(value)
}
