package list

type node[E any] struct {
	value    E        // Значение элемента, для KindOpaque это ссылка вызывающей стороны
	nextNode *node[E] // Следующий узел, которым владеет текущий
}

// release отцепляет узел от цепочки и обнуляет слот значения.
// Для KindOpaque обнуляется только ссылка, сами данные не трогаются.
func (n *node[E]) release() {
	var zero E
	n.value = zero
	n.nextNode = nil
}
