package pkg

import (
	"fmt"

	"github.com/bdlm/log"
)

// WrappedError представляет собой структуру для обертывания ошибки и записи ее в логи.
// Реализует интерфейс error.
// Дополнительно реализует функционал вывода сообщений (не ошибок) в логи.
type WrappedError struct {
	functionName string     // Имя функции (где произошла ошибка?)
	comment      string     // Комментарий к ошибке (что именно вызвало ошибку?)
	err          error      // Ошибка, которая будет обернута
	fields       log.Fields // Дополнительные поля для записи в логи
}

// NewWrappedError создает новый экземпляр WrappedError с именем функции, но без комментария.
// То есть уже известно, где ошибка может произойти, но что именно за ошибка еще неизвестно.
func NewWrappedError(funcName string) *WrappedError {
	return &WrappedError{functionName: funcName, fields: log.Fields{}}
}

// Specify обновляет экземпляр, если переданная ошибка не nil. Перезаписываются err и comment.
func (e *WrappedError) Specify(err error, comment string) *WrappedError {
	if err != nil {
		e.err = err
		e.comment = comment
	}
	return e
}

// With добавляет поле, которое попадет в лог вместе с ошибкой или сообщением.
func (e *WrappedError) With(key string, value interface{}) *WrappedError {
	e.fields[key] = value
	return e
}

// Error возвращает строковое представление ошибки с комментарием и именем функции.
func (e *WrappedError) Error() string {
	if e.err == nil {
		return ""
	}
	return fmt.Sprintf("'%s' in function '%s' invoked '%s'", e.comment, e.functionName, e.err.Error())
}

// Unwrap возвращает обернутую ошибку.
func (e *WrappedError) Unwrap() error {
	return e.err
}

// LogError записывает ошибку в лог. Если ошибки нет, то ничего не делает.
func (e *WrappedError) LogError() {
	if e.err != nil {
		e.entry().Error(e.Error())
	}
}

// LogMsg записывает в лог сообщение, которое не является ошибкой.
func (e *WrappedError) LogMsg(msg string) {
	e.entry().Info(fmt.Sprintf("'%s' from function '%s'", msg, e.functionName))
}

// Report записывает ошибку в лог на уровне debug и возвращает исходную ошибку без обертки,
// чтобы вызывающая сторона могла сравнить ее с sentinel-значением.
func (e *WrappedError) Report() error {
	if e.err != nil {
		e.entry().Debug(e.Error())
	}
	return e.err
}

func (e *WrappedError) entry() *log.Entry {
	fields := make(log.Fields, len(e.fields)+1)
	for k, v := range e.fields {
		fields[k] = v
	}
	fields["func"] = e.functionName
	return log.WithFields(fields)
}
