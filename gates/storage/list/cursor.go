package list

import "github.com/Slot148/tlist/gates/storage"

// Cursor это однопроходный обход списка от головы к хвосту.
// Курсор не владеет ни списком, ни его элементами.
//
// При создании курсор запоминает поколение списка. Любое структурное изменение списка
// (Append, PopFront, InsertAt, RemoveAt, TakeAt, Clear, Destroy) делает курсор недействительным:
// HasNext возвращает false, а Next возвращает ErrCursorInvalidated. Replace курсор не инвалидирует.
type Cursor[E any] struct {
	list       *List[E]
	current    *node[E] // Узел, значение которого вернет следующий вызов Next
	index      int
	generation uint64
	released   bool
}

// NewCursor создает курсор, стоящий перед первым элементом списка
func NewCursor[E any](l *List[E]) *Cursor[E] {
	return &Cursor[E]{list: l, current: l.firstNode, generation: l.generation}
}

// Cursor создает курсор по списку
func (l *List[E]) Cursor() *Cursor[E] {
	return NewCursor(l)
}

// HasNext сообщает, есть ли текущий элемент у действительного курсора
func (c *Cursor[E]) HasNext() bool {
	return c.Valid() && c.current != nil
}

// Valid сообщает, что курсор не освобожден и список не менялся структурно с момента его создания
func (c *Cursor[E]) Valid() bool {
	return !c.released && c.generation == c.list.generation
}

// Index возвращает позицию элемента, который вернет следующий вызов Next
func (c *Cursor[E]) Index() int {
	return c.index
}

// Next возвращает значение текущего элемента без передачи владения и сдвигает курсор.
// Исчерпанный курсор возвращает ErrExhausted и остается на месте.
func (c *Cursor[E]) Next() (value E, err error) {
	switch {
	case c.released:
		return value, storage.ErrCursorReleased
	case c.generation != c.list.generation:
		return value, storage.ErrCursorInvalidated
	case c.current == nil:
		return value, storage.ErrExhausted
	}

	value = c.current.value
	c.current = c.current.nextNode
	c.index++
	return value, nil
}

// Release освобождает курсор. Список и его элементы не затрагиваются.
// Повторный вызов возвращает ErrCursorReleased.
func (c *Cursor[E]) Release() error {
	if c.released {
		return storage.ErrCursorReleased
	}
	c.released = true
	c.current = nil
	c.list = nil
	return nil
}
