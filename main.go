package main

import (
	"fmt"

	"github.com/PermitPay/PermitPay-Backend/api"
	"github.com/PermitPay/PermitPay-Backend/utils"
)

var envPath string = "."

func main() {

	config, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	server := api.NewServer(config)
	server.Start()
}
