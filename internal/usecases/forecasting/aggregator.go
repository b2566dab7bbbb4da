package forecasting

import (
	"time"

	"github.com/vfg2006/inventory-forecast-api/internal/domain"
)

// Aggregate colapsa eventos de pedido de um único produto em uma série diária
// densa de demanda, do primeiro dia observado até asOf (inclusive), em UTC.
// Dias sem venda entram com zero unidades: um ajuste de tendência apenas sobre
// os dias com venda superestimaria a demanda ao ignorar os dias silenciosos.
//
// A função é pura: não reordena o slice de entrada e não tem efeitos
// colaterais. Lista vazia de eventos produz série vazia.
func Aggregate(events []*domain.OrderEvent, asOf time.Time) []domain.DailyDemandPoint {
	if len(events) == 0 {
		return []domain.DailyDemandPoint{}
	}

	unitsByDay := make(map[time.Time]int, len(events))
	var firstDay time.Time

	for _, event := range events {
		if event == nil {
			continue
		}

		day := truncateToDay(event.OccurredAt)
		unitsByDay[day] += event.Quantity

		if firstDay.IsZero() || day.Before(firstDay) {
			firstDay = day
		}
	}

	if firstDay.IsZero() {
		return []domain.DailyDemandPoint{}
	}

	lastDay := truncateToDay(asOf)
	if lastDay.Before(firstDay) {
		lastDay = firstDay
	}

	totalDays := int(lastDay.Sub(firstDay).Hours()/24) + 1
	series := make([]domain.DailyDemandPoint, 0, totalDays)

	// A iteração por dia de calendário já produz a série ordenada e sem
	// lacunas, mesmo quando os eventos chegam fora de ordem
	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		series = append(series, domain.DailyDemandPoint{
			Date:  day,
			Units: unitsByDay[day],
		})
	}

	return series
}

// AggregateRange colapsa os eventos na série diária densa de uma janela de
// datas fixa, de from até to (inclusive). Diferente de Aggregate, a janela não
// depende dos eventos: dias anteriores ao primeiro pedido também entram com
// zero, e eventos fora da janela são descartados.
func AggregateRange(events []*domain.OrderEvent, from, to time.Time) []domain.DailyDemandPoint {
	firstDay := truncateToDay(from)
	lastDay := truncateToDay(to)
	if lastDay.Before(firstDay) {
		return []domain.DailyDemandPoint{}
	}

	unitsByDay := make(map[time.Time]int, len(events))
	for _, event := range events {
		if event == nil {
			continue
		}

		day := truncateToDay(event.OccurredAt)
		if day.Before(firstDay) || day.After(lastDay) {
			continue
		}
		unitsByDay[day] += event.Quantity
	}

	totalDays := int(lastDay.Sub(firstDay).Hours()/24) + 1
	series := make([]domain.DailyDemandPoint, 0, totalDays)

	for day := firstDay; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		series = append(series, domain.DailyDemandPoint{
			Date:  day,
			Units: unitsByDay[day],
		})
	}

	return series
}

// truncateToDay descarta a hora do dia e normaliza o fuso para UTC.
// O bucket é sempre o dia de calendário UTC, independente da origem do evento.
func truncateToDay(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
