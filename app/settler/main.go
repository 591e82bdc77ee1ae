package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"github.com/viney-shih/goroutines"

	"github.com/mintora/goapi/app/settler/sweeper"
	bCtx "github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/base/database/mongoclient"
	"github.com/mintora/goapi/base/guard"
	"github.com/mintora/goapi/base/log"
	"github.com/mintora/goapi/domain"
	"github.com/mintora/goapi/service/chain"
	"github.com/mintora/goapi/service/chain/contract"
	"github.com/mintora/goapi/service/query"
	escrow_repository "github.com/mintora/goapi/stores/escrow/repository"
	exchange_repository "github.com/mintora/goapi/stores/exchange/repository"
	fee_repository "github.com/mintora/goapi/stores/fee/repository"
	fee_usecase "github.com/mintora/goapi/stores/fee/usecase"
	listing_repository "github.com/mintora/goapi/stores/listing/repository"
	listing_usecase "github.com/mintora/goapi/stores/listing/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/settler/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

// The settler sweeps expired auctions and submits their settlement. Every
// settlement is effect idempotent, a sweep that dies halfway is simply
// finished by the next one.
func main() {
	ctx, cancel := bCtx.WithCancel(bCtx.Background())

	interval := viper.GetDuration("settler.interval")
	batch := viper.GetInt32("settler.batch")
	workers := viper.GetInt("settler.workers")
	retryLimit := viper.GetInt("settler.retryLimit")

	ctx.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[int32]string)
	for k := range keys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		rpcs[chainId] = rpcUrl
	}
	chainService, err := chain.NewClient(ctx, &chain.ClientCfg{
		RpcUrls:   rpcs,
		SignerKey: viper.GetString("marketplace.custodianKey"),
	})
	if err != nil {
		ctx.WithField("err", err).Warn("chainService started with error")
	}
	if chainService == nil {
		ctx.Panic("chainService is required")
	}
	erc721Service := contract.NewErc721(chainService)

	marketChainId := domain.ChainId(viper.GetInt32("marketplace.chainId"))
	custodian := domain.Address(chainService.Signer().Hex()).ToLower()
	operator := domain.Address(viper.GetString("marketplace.operator")).ToLower()

	listingRepo := listing_repository.NewListingRepo(q)
	activityRepo := listing_repository.NewActivityRepo(q)
	escrowRepo := escrow_repository.NewEscrowRepo(q)
	feeRepo := fee_repository.NewFeeRepo(q)

	feeUsecase := fee_usecase.NewFeeUseCase(&fee_usecase.FeeUseCaseCfg{
		FeeRepo:  feeRepo,
		Operator: operator,
	})
	listingUsecase := listing_usecase.NewListingUseCase(&listing_usecase.ListingUseCaseCfg{
		ListingRepo:  listingRepo,
		ActivityRepo: activityRepo,
		EscrowRepo:   escrowRepo,
		Fee:          feeUsecase,
		Asset: exchange_repository.NewErc721Custodian(&exchange_repository.Erc721CustodianCfg{
			ChainId: marketChainId,
			Erc721:  erc721Service,
		}),
		Value: exchange_repository.NewNativeTransferer(&exchange_repository.NativeTransfererCfg{
			ChainId:      marketChainId,
			ChainService: chainService,
		}),
		Guard:     guard.New(),
		Custodian: custodian,
	})

	pool := goroutines.NewPool(workers)
	sw := sweeper.New(&sweeper.Cfg{
		ListingRepo:    listingRepo,
		ListingUseCase: listingUsecase,
		Pool:           pool,
		Batch:          batch,
		RetryLimit:     retryLimit,
	})
	ticker := time.NewTicker(interval)

	go func() {
		for {
			sw.Sweep(ctx)
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ticker.Stop()
	cancel()
	pool.Release()
}

