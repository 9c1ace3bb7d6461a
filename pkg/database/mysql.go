package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type Db interface {
	Init() (*gorm.DB, error)
}

type db struct {
	Host string
	User string
	Pass string
	Port string
	Name string
	Ssl  string
	Tz   string
}

type dbMySQL struct {
	db
}

func (c *dbMySQL) Init() (*gorm.DB, error) {
	return gorm.Open(mysql.Open(c.dsn()), &gorm.Config{})
}

func (c *dbMySQL) dsn() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Pass, c.Host, c.Port, c.Name,
	)
}
