package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/database/mongoclient"
	"github.com/mintora/goapi/base/database/redisclient"
	"github.com/mintora/goapi/base/guard"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/base/metrics"
	bValidator "github.com/mintora/goapi/base/validator"
	"github.com/mintora/goapi/domain"
	mmiddleware "github.com/mintora/goapi/middleware"
	"github.com/mintora/goapi/service/chain"
	"github.com/mintora/goapi/service/chain/contract"
	"github.com/mintora/goapi/service/query"
	"github.com/mintora/goapi/service/redis"
	auth_delivery "github.com/mintora/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/mintora/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/mintora/goapi/stores/auth/usecase"
	escrow_delivery "github.com/mintora/goapi/stores/escrow/delivery/http"
	escrow_repository "github.com/mintora/goapi/stores/escrow/repository"
	escrow_usecase "github.com/mintora/goapi/stores/escrow/usecase"
	exchange_repository "github.com/mintora/goapi/stores/exchange/repository"
	fee_delivery "github.com/mintora/goapi/stores/fee/delivery/http"
	fee_repository "github.com/mintora/goapi/stores/fee/repository"
	fee_usecase "github.com/mintora/goapi/stores/fee/usecase"
	hc_delivery "github.com/mintora/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/mintora/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/mintora/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/mintora/goapi/stores/listing/delivery/http"
	listing_repository "github.com/mintora/goapi/stores/listing/repository"
	listing_usecase "github.com/mintora/goapi/stores/listing/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/mintora/goapi/app/api/docs"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			Mintora Marketplace API
//	@version		1.0
//	@description	API Document for the Mintora marketplace.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrive token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	// init chain service
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	for k := range keys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		rpcs[chainId] = rpcUrl
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:   rpcs,
		SignerKey: viper.GetString("marketplace.custodianKey"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	if chainService == nil {
		context.Panic("chainService is required")
	}
	erc721Service := contract.NewErc721(chainService)

	marketChainId := domain.ChainId(viper.GetInt32("marketplace.chainId"))
	custodian := domain.Address(chainService.Signer().Hex()).ToLower()
	operator := domain.Address(viper.GetString("marketplace.operator")).ToLower()

	assetCustodian := exchange_repository.NewErc721Custodian(&exchange_repository.Erc721CustodianCfg{
		ChainId: marketChainId,
		Erc721:  erc721Service,
	})
	valueTransferer := exchange_repository.NewNativeTransferer(&exchange_repository.NativeTransfererCfg{
		ChainId:      marketChainId,
		ChainService: chainService,
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	listingRepo := listing_repository.NewListingRepo(q)
	activityRepo := listing_repository.NewActivityRepo(q)
	escrowRepo := escrow_repository.NewEscrowRepo(q)
	feeRepo := fee_repository.NewFeeRepo(q)

	if err := listingRepo.EnsureIndexes(context); err != nil {
		context.WithField("err", err).Panic("listingRepo.EnsureIndexes failed")
	}
	if err := activityRepo.EnsureIndexes(context); err != nil {
		context.WithField("err", err).Panic("activityRepo.EnsureIndexes failed")
	}
	if err := escrowRepo.EnsureIndexes(context); err != nil {
		context.WithField("err", err).Panic("escrowRepo.EnsureIndexes failed")
	}

	// one guard serializes every mutating engine operation
	engineGuard := guard.New()

	hc := hc_usecase.New(hcRepo)
	feeUsecase := fee_usecase.NewFeeUseCase(&fee_usecase.FeeUseCaseCfg{
		FeeRepo:  feeRepo,
		Operator: operator,
	})
	escrowUsecase := escrow_usecase.NewEscrowUseCase(&escrow_usecase.EscrowUseCaseCfg{
		EscrowRepo:   escrowRepo,
		ActivityRepo: activityRepo,
		Value:        valueTransferer,
		Guard:        engineGuard,
	})
	listingUsecase := listing_usecase.NewListingUseCase(&listing_usecase.ListingUseCaseCfg{
		ListingRepo:  listingRepo,
		ActivityRepo: activityRepo,
		EscrowRepo:   escrowRepo,
		Fee:          feeUsecase,
		Asset:        assetCustodian,
		Value:        valueTransferer,
		Guard:        engineGuard,
		Custodian:    custodian,
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetString("auth.signingMsgTemplate"))

	authMiddleware := auth_middleware.New(auth)
	cached := mmiddleware.CacheHttp(viper.GetDuration("cache.httpTTL"))

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signingMsgTemplate"))
	listing_delivery.New(e, authMiddleware, cached, listingUsecase, activityRepo)
	escrow_delivery.New(e, authMiddleware, escrowUsecase)
	fee_delivery.New(e, authMiddleware, feeUsecase)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, authMiddleware.Auth())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
