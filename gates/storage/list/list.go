package list

import (
	"fmt"
	"iter"
	"reflect"
	"strconv"
	"strings"

	"github.com/Slot148/tlist/gates/storage"
	"github.com/Slot148/tlist/pkg"
	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
)

var (
	_ storage.Sequence[int32] = (*List[int32])(nil)
	_ containers.Container    = (*List[string])(nil)
)

// List это односвязный список с фиксированным видом элементов.
//
// Для KindInt32, KindFloat32, KindFloat64 и KindText список хранит собственные копии значений.
// Для KindOpaque список хранит ссылки вызывающей стороны и никогда ими не владеет:
// данные, на которые они указывают, освобождает вызывающая сторона (например, через ForEach до Destroy).
//
// Длина не кэшируется, каждая позиционная операция проходит цепочку от головы.
// Список не потокобезопасен.
type List[E any] struct {
	firstNode  *node[E]     // Первый узел, через него список владеет всей цепочкой
	kind       storage.Kind // Вид элементов, фиксируется при создании
	width      uintptr      // Размер одного слота значения в байтах
	generation uint64       // Увеличивается при каждом структурном изменении, по нему курсоры узнают об инвалидации
	destroyed  bool
}

func newList[E any](kind storage.Kind) *List[E] {
	return &List[E]{kind: kind, width: reflect.TypeOf((*E)(nil)).Elem().Size()}
}

// NewInt32 создает пустой список целых чисел
func NewInt32() *List[int32] {
	return newList[int32](storage.KindInt32)
}

// NewFloat32 создает пустой список чисел одинарной точности
func NewFloat32() *List[float32] {
	return newList[float32](storage.KindFloat32)
}

// NewFloat64 создает пустой список чисел двойной точности
func NewFloat64() *List[float64] {
	return newList[float64](storage.KindFloat64)
}

// NewText создает пустой список строк
func NewText() *List[string] {
	return newList[string](storage.KindText)
}

// NewOpaque создает пустой список ссылок на T, которыми владеет вызывающая сторона
func NewOpaque[T any]() *List[*T] {
	return newList[*T](storage.KindOpaque)
}

// New создает пустой список вида kind.
// Если тип E не соответствует kind, возвращает nil и ErrKindMismatch.
func New[E any](kind storage.Kind) (*List[E], error) {
	actual, ok := KindOf[E]()
	if !ok || actual != kind {
		return nil, pkg.NewWrappedError("New()").
			Specify(storage.ErrKindMismatch, "KindOf()").
			With("kind", kind.String()).
			With("type", reflect.TypeOf((*E)(nil)).Elem().String()).
			Report()
	}
	return newList[E](kind), nil
}

// KindOf возвращает вид элементов, соответствующий типу E.
// Ссылочные типы (указатели, map, срезы, каналы, функции, интерфейсы) относятся к KindOpaque.
func KindOf[E any]() (storage.Kind, bool) {
	var zero E
	switch any(zero).(type) {
	case int32:
		return storage.KindInt32, true
	case float32:
		return storage.KindFloat32, true
	case float64:
		return storage.KindFloat64, true
	case string:
		return storage.KindText, true
	}

	switch reflect.TypeOf((*E)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return storage.KindOpaque, true
	}
	return 0, false
}

// Kind возвращает вид элементов списка
func (l *List[E]) Kind() storage.Kind {
	return l.kind
}

// Width возвращает размер одного слота значения в байтах
func (l *List[E]) Width() uintptr {
	return l.width
}

// Destroyed сообщает, был ли список уничтожен
func (l *List[E]) Destroyed() bool {
	return l.destroyed
}

// Append добавляет элемент в конец списка.
// Хвост не запоминается, поэтому вставка проходит весь список.
func (l *List[E]) Append(value E) error {
	if l.destroyed {
		return l.trace("Append").Specify(storage.ErrDestroyed, "l.destroyed").Report()
	}

	newNode := &node[E]{value: l.adopt(value)}
	l.generation++
	// Случай пустого списка
	if l.firstNode == nil {
		l.firstNode = newNode
		return nil
	}

	lastNode := l.firstNode
	for ; lastNode.nextNode != nil; lastNode = lastNode.nextNode {
	}
	lastNode.nextNode = newNode
	return nil
}

// PopFront удаляет первый элемент и возвращает его значение.
// Для владеющих видов вызывающая сторона получает собственную копию, для KindOpaque исходную ссылку.
// Если список пуст, возвращает нулевое значение и false.
func (l *List[E]) PopFront() (value E, ok bool) {
	removed := l.unlink(0)
	if removed == nil {
		return value, false
	}
	value = removed.value
	removed.release()
	return value, true
}

// Len возвращает количество элементов, подсчитанное полным обходом
func (l *List[E]) Len() (length int) {
	for currentNode := l.firstNode; currentNode != nil; currentNode = currentNode.nextNode {
		length++
	}
	return length
}

// Peek возвращает значение элемента на позиции position без передачи владения.
// Если позиции нет в списке, возвращает нулевое значение и false.
func (l *List[E]) Peek(position int) (value E, ok bool) {
	currentNode := l.nodeAt(position)
	if currentNode == nil {
		_ = l.trace("Peek").Specify(storage.ErrOutOfRange, "l.nodeAt()").With("position", position).Report()
		return value, false
	}
	return currentNode.value, true
}

// Replace перезаписывает значение элемента на позиции position.
// Для KindText предыдущая строка освобождается и сохраняется копия новой.
// Для KindOpaque старая ссылка просто заменяется, ее данные не освобождаются.
// Если позиции нет в списке, возвращает ErrOutOfRange и список не меняется.
func (l *List[E]) Replace(position int, value E) error {
	if l.destroyed {
		return l.trace("Replace").Specify(storage.ErrDestroyed, "l.destroyed").Report()
	}

	currentNode := l.nodeAt(position)
	if currentNode == nil {
		return l.trace("Replace").Specify(storage.ErrOutOfRange, "l.nodeAt()").With("position", position).Report()
	}
	currentNode.value = l.adopt(value)
	return nil
}

// RemoveAt удаляет элемент на позиции position и освобождает его слот.
// Для KindOpaque узел только отцепляется, данные по ссылке не трогаются.
// Если позиции нет в списке, возвращает ErrOutOfRange и список не меняется.
func (l *List[E]) RemoveAt(position int) error {
	if l.destroyed {
		return l.trace("RemoveAt").Specify(storage.ErrDestroyed, "l.destroyed").Report()
	}

	removed := l.unlink(position)
	if removed == nil {
		return l.trace("RemoveAt").Specify(storage.ErrOutOfRange, "l.unlink()").With("position", position).Report()
	}
	removed.release()
	return nil
}

// InsertAt вставляет элемент перед текущим элементом на позиции position.
// Позиция 0 делает элемент новой головой, позиция Len() добавляет его в конец.
// При большей или отрицательной позиции возвращает ErrOutOfRange, значение в список не попадает.
func (l *List[E]) InsertAt(position int, value E) error {
	if l.destroyed {
		return l.trace("InsertAt").Specify(storage.ErrDestroyed, "l.destroyed").Report()
	}

	// Случай вставки в голову
	if position == 0 {
		l.firstNode = &node[E]{value: l.adopt(value), nextNode: l.firstNode}
		l.generation++
		return nil
	}

	prevNode := l.nodeAt(position - 1)
	if prevNode == nil {
		return l.trace("InsertAt").Specify(storage.ErrOutOfRange, "l.nodeAt()").With("position", position).Report()
	}
	prevNode.nextNode = &node[E]{value: l.adopt(value), nextNode: prevNode.nextNode}
	l.generation++
	return nil
}

// TakeAt удаляет элемент на позиции position и возвращает его значение.
// TakeAt(0) ведет себя так же, как PopFront.
// Если позиции нет в списке, возвращает нулевое значение и false.
func (l *List[E]) TakeAt(position int) (value E, ok bool) {
	if position == 0 {
		return l.PopFront()
	}

	removed := l.unlink(position)
	if removed == nil {
		_ = l.trace("TakeAt").Specify(storage.ErrOutOfRange, "l.unlink()").With("position", position).Report()
		return value, false
	}
	value = removed.value
	removed.release()
	return value, true
}

// ForEach вызывает visitor для каждого элемента от головы к хвосту.
// visitor не должен менять структуру списка: в этом случае обход прерывается и возвращается ErrCursorInvalidated.
func (l *List[E]) ForEach(visitor func(value E)) error {
	if l.destroyed {
		return l.trace("ForEach").Specify(storage.ErrDestroyed, "l.destroyed").Report()
	}

	cursor := NewCursor(l)
	defer cursor.Release()
	for {
		value, err := cursor.Next()
		if err == storage.ErrExhausted {
			return nil
		}
		if err != nil {
			return l.trace("ForEach").Specify(err, "cursor.Next()").With("index", cursor.Index()).Report()
		}
		visitor(value)
	}
}

// All возвращает итератор по парам (позиция, значение) от головы к хвосту.
// Итерация останавливается, если список изменился структурно.
func (l *List[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		cursor := NewCursor(l)
		defer cursor.Release()
		for {
			index := cursor.Index()
			value, err := cursor.Next()
			if err != nil || !yield(index, value) {
				return
			}
		}
	}
}

// Destroy освобождает все узлы списка и слоты значений.
// Для KindOpaque освобождается только цепочка, данные по ссылкам остаются нетронутыми.
// Повторный вызов возвращает ErrDestroyed.
func (l *List[E]) Destroy() error {
	if l.destroyed {
		return l.trace("Destroy").Specify(storage.ErrDestroyed, "l.destroyed").Report()
	}
	l.releaseChain()
	l.destroyed = true
	return nil
}

// Clear удаляет все элементы, список остается пригодным к использованию
func (l *List[E]) Clear() {
	if l.destroyed {
		return
	}
	l.releaseChain()
}

// Empty сообщает, пуст ли список
func (l *List[E]) Empty() bool {
	return l.firstNode == nil
}

// Size это Len для совместимости с containers.Container
func (l *List[E]) Size() int {
	return l.Len()
}

// Values возвращает копию значений списка по порядку
func (l *List[E]) Values() []interface{} {
	values := make([]interface{}, 0, l.Len())
	for currentNode := l.firstNode; currentNode != nil; currentNode = currentNode.nextNode {
		values = append(values, currentNode.value)
	}
	return values
}

// SortedValues возвращает значения списка, упорядоченные comparator. Сам список не меняется.
func (l *List[E]) SortedValues(comparator utils.Comparator) []interface{} {
	return containers.GetSortedValues(l, comparator)
}

// Clone создает новый список того же вида.
// Значения владеющих видов копируются, ссылки KindOpaque разделяются и по-прежнему принадлежат вызывающей стороне.
func (l *List[E]) Clone() *List[E] {
	clone := newList[E](l.kind)
	var lastNode *node[E]
	for currentNode := l.firstNode; currentNode != nil; currentNode = currentNode.nextNode {
		newNode := &node[E]{value: clone.adopt(currentNode.value)}
		if lastNode == nil {
			clone.firstNode = newNode
		} else {
			lastNode.nextNode = newNode
		}
		lastNode = newNode
	}
	return clone
}

// String возвращает список в виде [a, b, c]
func (l *List[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for currentNode := l.firstNode; currentNode != nil; currentNode = currentNode.nextNode {
		sb.WriteString(l.format(currentNode.value))
		if currentNode.nextNode != nil {
			sb.WriteString(", ")
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func (l *List[E]) format(value E) string {
	switch v := any(value).(type) {
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', 2, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case string:
		return `"` + v + `"`
	}

	rv := reflect.ValueOf(any(value))
	switch rv.Kind() {
	case reflect.Invalid:
		return "<nil>"
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return fmt.Sprintf("0x%x", rv.Pointer())
	}
	return fmt.Sprintf("%v", value)
}

// adopt возвращает значение в том виде, в котором его хранит список.
// Для KindText создается собственная копия строки, остальные виды копируются присваиванием.
func (l *List[E]) adopt(value E) E {
	if l.kind == storage.KindText {
		if s, ok := any(value).(string); ok {
			return any(strings.Clone(s)).(E)
		}
	}
	return value
}

// nodeAt возвращает узел на позиции position или nil
func (l *List[E]) nodeAt(position int) *node[E] {
	if position < 0 {
		return nil
	}
	currentNode := l.firstNode
	for x := 0; currentNode != nil && x < position; x++ {
		currentNode = currentNode.nextNode
	}
	return currentNode
}

// unlink отцепляет узел на позиции position и возвращает его, либо nil, если позиции нет в списке
func (l *List[E]) unlink(position int) *node[E] {
	if position < 0 || l.firstNode == nil {
		return nil
	}

	var removed *node[E]
	// Случай удаления первого элемента
	if position == 0 {
		removed = l.firstNode
		l.firstNode = removed.nextNode
	} else {
		prevNode := l.nodeAt(position - 1)
		// Прошли через весь список и не нашли нужный узел
		if prevNode == nil || prevNode.nextNode == nil {
			return nil
		}
		removed = prevNode.nextNode
		prevNode.nextNode = removed.nextNode
	}
	l.generation++
	return removed
}

func (l *List[E]) releaseChain() {
	currentNode := l.firstNode
	for currentNode != nil {
		nextNode := currentNode.nextNode
		currentNode.release()
		currentNode = nextNode
	}
	l.firstNode = nil
	l.generation++
}

func (l *List[E]) trace(funcName string) *pkg.WrappedError {
	return pkg.NewWrappedError("(l *List) "+funcName+"()").With("kind", l.kind.String())
}
