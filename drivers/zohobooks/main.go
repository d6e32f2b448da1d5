package main

import (
	driver "github.com/openledgerio/booksync/drivers/zohobooks/internal"
	"github.com/openledgerio/booksync/protocol"
	_ "github.com/openledgerio/booksync/writers/stdout"
)

func main() {
	protocol.RegisterDriver(&driver.ZohoBooks{})
}
