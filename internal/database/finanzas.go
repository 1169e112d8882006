package database

import (
	"time"

	"github.com/FedericoSorianox/Badgers-Admin/internal/models"

	"github.com/shopspring/decimal"
)

// ResumenFinanciero is the monthly income vs. expenses picture shown on the
// Finanzas page and fed to the AI assistant.
type ResumenFinanciero struct {
	Mes            int             `json:"mes"`
	Anio           int             `json:"año"`
	IngresoCuotas  decimal.Decimal `json:"ingreso_cuotas"`
	IngresoVentas  decimal.Decimal `json:"ingreso_ventas"`
	Egresos        decimal.Decimal `json:"egresos"`
	Balance        decimal.Decimal `json:"balance"`
	CantidadPagos  int64           `json:"cantidad_pagos"`
	CantidadVentas int64           `json:"cantidad_ventas"`
}

// GetResumenFinanciero aggregates pagos, ventas and gastos for one month.
func GetResumenFinanciero(mes, anio int) (*ResumenFinanciero, error) {
	resumen := &ResumenFinanciero{Mes: mes, Anio: anio}

	desde := time.Date(anio, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	hasta := desde.AddDate(0, 1, 0)

	// COALESCE ensures we get 0 instead of NULL on empty months
	err := DB.Model(&models.Pago{}).
		Where("mes = ? AND anio = ?", mes, anio).
		Select("COALESCE(SUM(monto), 0)").
		Scan(&resumen.IngresoCuotas).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.Pago{}).
		Where("mes = ? AND anio = ?", mes, anio).
		Count(&resumen.CantidadPagos).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.Venta{}).
		Where("fecha_venta >= ? AND fecha_venta < ?", desde, hasta).
		Select("COALESCE(SUM(total_venta), 0)").
		Scan(&resumen.IngresoVentas).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.Venta{}).
		Where("fecha_venta >= ? AND fecha_venta < ?", desde, hasta).
		Count(&resumen.CantidadVentas).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.Gasto{}).
		Where("fecha >= ? AND fecha < ?", desde, hasta).
		Select("COALESCE(SUM(monto), 0)").
		Scan(&resumen.Egresos).Error
	if err != nil {
		return nil, err
	}

	resumen.Balance = resumen.IngresoCuotas.Add(resumen.IngresoVentas).Sub(resumen.Egresos)
	return resumen, nil
}
