package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	gatewayx "github.com/greennext/shopping-gateway/gateway"
	backendx "github.com/greennext/shopping-gateway/gateway/backend"
	serverx "github.com/greennext/shopping-gateway/gateway/server"
	toolx "github.com/greennext/shopping-gateway/gateway/tool"
	configx "github.com/greennext/shopping-gateway/pkg/config"
	_ "github.com/greennext/shopping-gateway/pkg/logger/autoload"
)

func main() {
	backendCfg := configx.MustNew[backendx.Config]("")
	gatewayCfg := configx.MustNew[gatewayx.Config]("")

	gw := gatewayx.New(*gatewayCfg, *backendCfg)
	infos, executor := toolx.Build(gw)

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
	}
	log.Info().
		Str("catalog", backendCfg.ProductCatalogAddr).
		Str("cart", backendCfg.CartAddr).
		Str("checkout", backendCfg.CheckoutAddr).
		Strs("tools", names).
		Msg("shopping gateway ready")

	if err := serverx.New(executor).Serve(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("stdio server failed")
	}
}
