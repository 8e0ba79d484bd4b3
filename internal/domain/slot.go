package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// SequenceStep одна услуга внутри найденного слота
type SequenceStep struct {
	ServiceID         string
	ServiceName       string
	StaffID           string
	StaffName         string
	IsAnyProfessional bool // специалист подобран из "любого"
	StartTime         types.TimeString
	EndTime           types.TimeString
	StartMinutes      int
	EndMinutes        int
	BaseDuration      int
	AddOnsDuration    int
	TotalDuration     int
	AddOns            []AddOn
}

// CandidateSlot проверенное время начала со всей последовательностью услуг
type CandidateSlot struct {
	StartTime         types.TimeString // начало первой услуги
	EndTime           types.TimeString // окончание последней услуги
	StartMinutes      int
	EndMinutes        int
	ActivityStartTime types.TimeString // выезд / начало буфера
	ActivityEndTime   types.TimeString // возвращение / конец буфера
	Sequence          []SequenceStep
	TotalDuration     int // длительность услуг
	TravelTime        int
	TravelSource      string
	IsHomeService     bool
}
