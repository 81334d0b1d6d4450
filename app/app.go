// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	evmClient "github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/observability"

	"github.com/vortexbridge/bridge-core/api"
	"github.com/vortexbridge/bridge-core/api/handlers"
	"github.com/vortexbridge/bridge-core/bridge"
	"github.com/vortexbridge/bridge-core/bridge/correlate"
	"github.com/vortexbridge/bridge-core/bridge/estimate"
	"github.com/vortexbridge/bridge-core/bridge/plan"
	"github.com/vortexbridge/bridge-core/bridge/service"
	"github.com/vortexbridge/bridge-core/bridge/submit"
	"github.com/vortexbridge/bridge-core/chains/evm"
	"github.com/vortexbridge/bridge-core/chains/evm/calls/contracts"
	"github.com/vortexbridge/bridge-core/chains/evm/calls/events"
	"github.com/vortexbridge/bridge-core/chains/evm/executor"
	"github.com/vortexbridge/bridge-core/chains/vara"
	"github.com/vortexbridge/bridge-core/config"
	"github.com/vortexbridge/bridge-core/fees"
	"github.com/vortexbridge/bridge-core/health"
	"github.com/vortexbridge/bridge-core/metrics"
	"github.com/vortexbridge/bridge-core/relay"
)

var Version string

// VARA_SS58_PREFIX is the address encoding network identifier of Vara.
const VARA_SS58_PREFIX = 137

type chainComponents struct {
	name      string
	direction bridge.Direction
	sender    string
	allowance service.AllowanceReader
	planner   *plan.Planner
	estimator *estimate.Estimator
	submitter *submit.Submitter
	source    correlate.EventSource
	feeReader fees.ChainFeeReader
	chain     bridge.Chain
}

func Run() error {
	var err error

	configFlag := viper.GetString(config.ConfigFlagName)
	configURL := viper.GetString("config-url")

	var configuration *config.Config
	if configURL != "" {
		configuration, err = config.GetSharedConfigFromNetwork(configURL)
		panicOnError(err)
	}

	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(configuration)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, configuration)
		panicOnError(err)
	}

	observability.ConfigureLogger(configuration.ServiceConfig.LogLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	go health.StartHealthEndpoint(configuration.ServiceConfig.HealthPort)

	mp, err := observability.InitMetricProvider(context.Background(), configuration.ServiceConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bridgeMetrics, err := metrics.NewBridgeMetrics(mp.Meter("bridge-metric-provider"))
	panicOnError(err)

	tokenStore := config.NewTokenStore(configuration.ServiceConfig.Tokens)

	components := make([]*chainComponents, 0, len(configuration.ChainConfigs))
	for _, chainConfig := range configuration.ChainConfigs {
		switch chainConfig["type"] {
		case "evm":
			{
				c, err := setupEVMChain(chainConfig, bridgeMetrics)
				panicOnError(err)
				components = append(components, c)
			}
		case "vara":
			{
				c, err := setupVaraChain(chainConfig, bridgeMetrics)
				panicOnError(err)
				components = append(components, c)
			}
		default:
			panic(fmt.Errorf("type '%s' not recognized", chainConfig["type"]))
		}
	}

	feeReaders := make(map[bridge.Chain]fees.ChainFeeReader)
	for _, c := range components {
		feeReaders[c.chain] = c.feeReader
	}
	feeResolver := fees.NewResolver(feeReaders)

	estimators := make(map[string]handlers.CostEstimator)
	bridgers := make(map[string]handlers.Bridger)
	for _, c := range components {
		svc := service.New(
			c.direction,
			c.sender,
			tokenStore,
			c.allowance,
			feeResolver,
			c.planner,
			c.estimator,
			c.submitter,
			c.source,
		)
		estimators[c.name] = svc
		if c.submitter != nil {
			bridgers[c.name] = svc
		}
		log.Info().Str("chain", c.name).Str("direction", c.direction.String()).Msg("Registered paying chain")
	}

	indexer := relay.NewIndexerAPI(configuration.ServiceConfig.IndexerURL)
	checker := relay.NewChecker(indexer)
	defer checker.Stop()

	estimateHandler := handlers.NewEstimateHandler(estimators)
	bridgingHandler := handlers.NewBridgingHandler(bridgers)
	availabilityHandler := handlers.NewAvailabilityHandler(checker)
	go api.Serve(ctx, configuration.ServiceConfig.ApiAddr, estimateHandler, bridgingHandler, availabilityHandler)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started bridge core: %s. Version: v%s", configuration.ServiceConfig.Id, Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

func setupEVMChain(chainConfig map[string]interface{}, bridgeMetrics *metrics.BridgeMetrics) (*chainComponents, error) {
	cfg, err := evm.NewEVMConfig(chainConfig)
	if err != nil {
		return nil, err
	}

	client, err := evmClient.NewEVMClient(cfg.GeneralChainConfig.Endpoint, nil)
	if err != nil {
		return nil, err
	}
	ethClient, err := ethclient.Dial(cfg.GeneralChainConfig.Endpoint)
	if err != nil {
		return nil, err
	}

	managerAddress := common.HexToAddress(cfg.Erc20Manager)
	manager := contracts.NewERC20ManagerContract(client, managerAddress)
	payment := contracts.NewBridgingPaymentContract(client, common.HexToAddress(cfg.BridgingPayment))

	sender := common.HexToAddress(cfg.Sender)
	chainID := new(big.Int).SetUint64(*cfg.GeneralChainConfig.Id)

	var permits *evm.PermitSigner
	var submitter *submit.Submitter
	if cfg.Key != "" {
		key, err := crypto.HexToECDSA(cfg.Key)
		if err != nil {
			return nil, fmt.Errorf("invalid signing key: %w", err)
		}

		txSender := executor.NewSender(ethClient, chainID, key, cfg.BlockRetryInterval)
		sender = txSender.Address()
		permits = evm.NewPermitSigner(chainID, sender, managerAddress, evm.NewKeySigner(key))
		submitter = submit.NewSubmitter(executor.NewExecutor(txSender), bridgeMetrics)
	}

	builder := evm.NewStepBuilder(
		sender,
		manager,
		payment,
		func(address common.Address) evm.TokenContract {
			return contracts.NewERC20Contract(client, address)
		},
		executor.NewGasEstimator(ethClient),
		permits,
	)
	allowance := evm.NewAllowanceReader(
		sender,
		managerAddress,
		func(address common.Address) evm.TokenStateReader {
			return contracts.NewERC20Contract(client, address)
		},
	)

	return &chainComponents{
		name:      cfg.GeneralChainConfig.Name,
		direction: bridge.EthereumToVara,
		sender:    sender.Hex(),
		allowance: allowance,
		planner:   plan.NewPlanner(builder),
		estimator: estimate.NewEstimator(executor.NewGasPricer(ethClient)),
		submitter: submitter,
		source:    events.NewListener(client, managerAddress, cfg.BlockRetryInterval),
		feeReader: evm.NewFeeReader(payment),
		chain:     bridge.ChainEthereum,
	}, nil
}

func setupVaraChain(chainConfig map[string]interface{}, bridgeMetrics *metrics.BridgeMetrics) (*chainComponents, error) {
	cfg, err := vara.NewVaraConfig(chainConfig)
	if err != nil {
		return nil, err
	}

	conn, err := vara.NewConnection(cfg.GeneralChainConfig.Endpoint, cfg.FinalityTimeout)
	if err != nil {
		return nil, err
	}

	vftManager, err := types.NewHashFromHexString(cfg.VftManager)
	if err != nil {
		return nil, err
	}
	payment, err := types.NewHashFromHexString(cfg.BridgingPayment)
	if err != nil {
		return nil, err
	}
	sender, err := types.NewHashFromHexString(cfg.Sender)
	if err != nil {
		return nil, err
	}

	var submitter *submit.Submitter
	if cfg.Key != "" {
		keypair, err := signature.KeyringPairFromSecret(cfg.Key, VARA_SS58_PREFIX)
		if err != nil {
			return nil, fmt.Errorf("invalid signing key: %w", err)
		}
		submitter = submit.NewSubmitter(vara.NewExecutor(conn, keypair), bridgeMetrics)
	}

	builder := vara.NewStepBuilder(sender, vftManager, payment, vara.NewRPCGasEstimator(conn.Client()))

	return &chainComponents{
		name:      cfg.GeneralChainConfig.Name,
		direction: bridge.VaraToEthereum,
		sender:    sender.Hex(),
		allowance: vara.NewAllowanceReader(conn, sender, vftManager),
		planner:   plan.NewPlanner(builder),
		estimator: estimate.NewEstimator(vara.NewGasPricer(cfg.GasPrice)),
		submitter: submitter,
		source:    vara.NewListener(conn, vftManager, cfg.BlockRetryInterval),
		feeReader: vara.NewFeeReader(conn, payment),
		chain:     bridge.ChainVara,
	}, nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
