// file: internals/features/finance/fees/model/counter_model.go
package model

// Counter: sequence generik berbasis tabel untuk nomor kuitansi.
// Increment dilakukan atomik (INSERT .. ON CONFLICT .. DO UPDATE) di dalam
// transaksi pembayaran, jadi nomor ikut roll-back kalau transaksi gagal.
type Counter struct {
	CounterKey   string `gorm:"column:counter_key;type:varchar(40);primaryKey" json:"counter_key"`
	CounterValue int64  `gorm:"column:counter_value;type:bigint;not null;default:0" json:"counter_value"`
}

func (Counter) TableName() string { return "counters" }
