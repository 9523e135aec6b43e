package signal

import (
	"errors"
	"fmt"
)

// ErrEmptySignal возвращается, когда после очистки или чтения не осталось ни одного отсчета
var ErrEmptySignal = errors.New("signal contains no samples")

// ReadError означает, что файл записи не удалось прочитать ни одним из способов.
// Запрос с такой ошибкой не повторяется.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read signal file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
