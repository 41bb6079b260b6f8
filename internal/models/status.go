package models

// StoredStatus - статус платежа, который хранится в базе: только Pendente или Pago.
type StoredStatus string

// ComputedStatus - статус, вычисляемый при каждом чтении из хранимого статуса,
// срока оплаты и текущей даты. Atrasado никогда не сохраняется.
type ComputedStatus string

const (
	// StatusPending - платеж ожидает оплаты.
	StatusPending StoredStatus = "Pendente"
	// StatusPaid - платеж оплачен.
	StatusPaid StoredStatus = "Pago"
)

const (
	ComputedPaid    ComputedStatus = "Pago"
	ComputedPending ComputedStatus = "Pendente"
	ComputedOverdue ComputedStatus = "Atrasado"
)

// Valid сообщает, что статус допустим для записи.
func (s StoredStatus) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// ParseComputedStatus распознает значение фильтра status.
// Для неизвестных значений возвращает false: такой фильтр не применяется.
func ParseComputedStatus(s string) (ComputedStatus, bool) {
	switch ComputedStatus(s) {
	case ComputedPaid, ComputedPending, ComputedOverdue:
		return ComputedStatus(s), true
	}
	return "", false
}

// ResolveStatus вычисляет статус платежа на дату today.
//
// SQL-предикаты фильтра по статусу (storage/repository/filter.go) обязаны
// давать ровно то же разбиение, иначе отфильтрованный список разойдется
// с отображаемым статусом.
func ResolveStatus(stored StoredStatus, due *Date, today Date) ComputedStatus {
	if stored == StatusPaid {
		return ComputedPaid
	}
	if due != nil && due.Before(today) {
		return ComputedOverdue
	}
	return ComputedPending
}
