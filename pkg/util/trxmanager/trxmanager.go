package trxmanager

import (
	"sitelabour/internal/abstraction"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type trxManager struct {
	db *gorm.DB
}

func New(db *gorm.DB) *trxManager {
	return &trxManager{db}
}

// WithTrx runs fn inside one gorm transaction; the transaction connection is
// carried on the context so repositories pick it up via CheckTrx.
func (g *trxManager) WithTrx(pctx *abstraction.Context, fn func(ctx *abstraction.Context) error) (err error) {
	trx := g.db.Begin()
	if trx.Error != nil {
		return trx.Error
	}

	ctx := new(abstraction.Context)
	ctx.Context = pctx.Context
	ctx.Auth = pctx.Auth
	ctx.Trx = &abstraction.TrxContext{Db: trx}

	defer func() {
		if r := recover(); r != nil {
			trx.Rollback()
			logrus.Errorf("panic inside transaction: %v", r)
			panic(r)
		}
	}()

	if err = fn(ctx); err != nil {
		trx.Rollback()
		return err
	}

	return trx.Commit().Error
}
