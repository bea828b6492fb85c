package validation

// Error агрегирует ошибки валидации по полям запроса.
//
// В API сериализуется как {"errors": {"field": ["msg", ...]}} со статусом 422.
type Error struct {
	Fields map[string][]string
}

// NewError создаёт пустой агрегат ошибок.
func NewError() *Error {
	return &Error{Fields: make(map[string][]string)}
}

// Add добавляет сообщение об ошибке для поля.
func (e *Error) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

// Empty сообщает, что ошибок не накоплено.
func (e *Error) Empty() bool {
	return len(e.Fields) == 0
}

// Error реализует error. Текст общий, детали лежат в Fields.
func (e *Error) Error() string {
	return "validation failed"
}

// ErrOrNil возвращает e, если есть хотя бы одна ошибка, иначе nil.
// Удобно в конце цепочки проверок сервиса.
func (e *Error) ErrOrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}
