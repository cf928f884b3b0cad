package playback

import "strconv"

// Index - необязательный индекс. Нулевое значение означает "ничего не выбрано".
type Index struct {
	value int
	set   bool
}

// None возвращает пустой индекс
func None() Index {
	return Index{}
}

// Some возвращает установленный индекс
func Some(i int) Index {
	return Index{value: i, set: true}
}

// Get возвращает значение индекса и признак того, что он установлен
func (i Index) Get() (int, bool) {
	return i.value, i.set
}

// IsSet сообщает, установлен ли индекс
func (i Index) IsSet() bool {
	return i.set
}

func (i Index) String() string {
	if !i.set {
		return "none"
	}
	return strconv.Itoa(i.value)
}
