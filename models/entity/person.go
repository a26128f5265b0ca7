package entity

import (
	"fmt"

	"github.com/Slot148/tlist/internal/codes"
	errs "github.com/bdlm/errors"
)

// Person это запись, которой владеет вызывающая сторона.
// Списки вида KindOpaque хранят только ссылки на Person и никогда их не освобождают.
type Person struct {
	name     string
	age      int
	released bool
}

// NewPerson создает новую запись
func NewPerson(name string, age int) *Person {
	return &Person{name: name, age: age}
}

// Name возвращает имя
func (p *Person) Name() string {
	return p.name
}

// Age возвращает возраст
func (p *Person) Age() int {
	return p.age
}

// Release освобождает запись. Повторное освобождение возвращает ошибку.
func (p *Person) Release() error {
	if p.released {
		return errs.New(codes.ErrUnspecified, "person %q already released", p.name)
	}
	p.released = true
	p.name = ""
	return nil
}

// Released сообщает, была ли запись освобождена
func (p *Person) Released() bool {
	return p.released
}

func (p *Person) String() string {
	return fmt.Sprintf("Person{ name=%s, age=%d }", p.name, p.age)
}
