package components

import (
	"hotel-voucher-api/internal/domain/voucher"
	"hotel-voucher-api/internal/pkg/clock"
	"hotel-voucher-api/internal/pkg/config"
	"hotel-voucher-api/internal/pkg/signature"
	"hotel-voucher-api/internal/usecase"
	"hotel-voucher-api/internal/usecase/commands"
	"hotel-voucher-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *signature.Signer {
		return signature.NewSigner(cfg.Voucher.SigningSecret)
	},
	func(cfg config.Config) *voucher.CodeGenerator {
		return voucher.NewCodeGenerator(cfg.Voucher.HotelCode, cfg.Voucher.SequenceWidth)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewVoucherCommands,
		commands.NewSyncCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewVoucherQueries,
		queries.NewSyncQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
