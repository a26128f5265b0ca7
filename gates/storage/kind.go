package storage

import "fmt"

// Kind задает способ хранения и владения элементами списка.
// Фиксируется при создании списка и не меняется до его уничтожения.
type Kind uint8

const (
	// KindOpaque хранит ссылку вызывающей стороны как есть, список ею не владеет
	KindOpaque Kind = iota
	// KindInt32 хранит копию int32
	KindInt32
	// KindFloat32 хранит копию float32
	KindFloat32
	// KindFloat64 хранит копию float64
	KindFloat64
	// KindText хранит собственную копию строки
	KindText
)

var kindNames = [...]string{
	KindOpaque:  "Opaque",
	KindInt32:   "Integer32",
	KindFloat32: "Float32",
	KindFloat64: "Float64",
	KindText:    "Text",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Owned сообщает, владеет ли список значениями этого вида.
// Для KindOpaque список никогда не освобождает данные, на которые ссылается.
func (k Kind) Owned() bool {
	return k != KindOpaque
}
