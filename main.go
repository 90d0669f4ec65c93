package main

import (
	"github.com/nmorales/cuentas/cmd"
	"github.com/nmorales/cuentas/migrations"
)

func main() {
	cmd.Execute(migrations.FS)
}
