package abstraction

import (
	"gorm.io/gorm"
)

type Repository struct {
	Db *gorm.DB
}

// CheckTrx returns the transaction connection when the request runs inside
// trxmanager, otherwise the base connection.
func (r *Repository) CheckTrx(ctx *Context) *gorm.DB {
	if ctx != nil && ctx.Trx != nil {
		return ctx.Trx.Db
	}
	return r.Db
}
