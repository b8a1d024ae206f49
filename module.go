package offers

import (
	"context"
	"encoding/json"

	"cosmossdk.io/core/address"
	"cosmossdk.io/core/appmodule"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/store"
	"cosmossdk.io/depinject"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/provlabs/offers/keeper"
	"github.com/provlabs/offers/simulation"
	"github.com/provlabs/offers/types"
)

// ConsensusVersion defines the current x/offers module consensus version.
const ConsensusVersion = 1

var (
	_ appmodule.AppModule        = AppModule{}
	_ appmodule.HasBeginBlocker  = AppModule{}
	_ module.HasName             = AppModule{}
	_ module.HasConsensusVersion = AppModule{}
	_ module.HasGenesis          = AppModule{}
)

// AppModule implements the offers module. Genesis is carried as plain JSON.
type AppModule struct {
	keeper       *keeper.Keeper
	addressCodec address.Codec
}

// NewAppModule creates a new AppModule instance.
func NewAppModule(keeper *keeper.Keeper, addressCodec address.Codec) AppModule {
	return AppModule{
		keeper:       keeper,
		addressCodec: addressCodec,
	}
}

// Name returns the offers module name.
func (AppModule) Name() string { return types.ModuleName }

// IsOnePerModuleType asserts one module per type.
func (AppModule) IsOnePerModuleType() {}

// IsAppModule asserts this is an app module.
func (AppModule) IsAppModule() {}

// ConsensusVersion returns the module consensus version.
func (AppModule) ConsensusVersion() uint64 { return ConsensusVersion }

// DefaultGenesis returns default genesis state as raw bytes.
func (AppModule) DefaultGenesis(_ codec.JSONCodec) json.RawMessage {
	return MustMarshalGenesis(types.DefaultGenesisState())
}

// ValidateGenesis validates the offers genesis state.
func (AppModule) ValidateGenesis(_ codec.JSONCodec, _ client.TxEncodingConfig, bz json.RawMessage) error {
	_, err := ParseGenesis(bz)
	return err
}

// InitGenesis initializes the module's state from genesis.
func (m AppModule) InitGenesis(ctx sdk.Context, _ codec.JSONCodec, bz json.RawMessage) {
	genesis, err := ParseGenesis(bz)
	if err != nil {
		panic(err)
	}
	m.keeper.InitGenesis(ctx, genesis)
}

// ExportGenesis exports the module's state to genesis.
func (m AppModule) ExportGenesis(ctx sdk.Context, _ codec.JSONCodec) json.RawMessage {
	return MustMarshalGenesis(m.keeper.ExportGenesis(ctx))
}

// BeginBlock announces the vectors whose start time has been reached.
func (m AppModule) BeginBlock(ctx context.Context) error {
	return m.keeper.BeginBlocker(ctx)
}

// MsgServer returns the module's message handlers.
func (m AppModule) MsgServer() types.MsgServer {
	return keeper.NewMsgServer(m.keeper)
}

// QueryServer returns the module's query handlers.
func (m AppModule) QueryServer() types.QueryServer {
	return keeper.NewQueryServer(m.keeper)
}

// GenerateGenesisState creates a randomized genesis state for simulations.
func (AppModule) GenerateGenesisState(simState *module.SimulationState) {
	simulation.RandomizedGenState(simState)
}

// RegisterStoreDecoder registers a decoder for the offers store.
func (AppModule) RegisterStoreDecoder(sdr simtypes.StoreDecoderRegistry) {
	sdr[types.StoreKey] = simulation.NewDecodeStore()
}

// WeightedOperations returns the operations run by the simulator.
func (m AppModule) WeightedOperations(simState module.SimulationState) []simtypes.WeightedOperation {
	return simulation.WeightedOperations(simState, m.keeper)
}

// ModuleInputs defines the inputs required to initialize the offers module.
type ModuleInputs struct {
	depinject.In
	StoreService store.KVStoreService
	EventService event.Service
	AddressCodec address.Codec
	BankKeeper   types.BankKeeper
}

// ModuleOutputs defines the outputs of the offers module provider.
type ModuleOutputs struct {
	depinject.Out
	Keeper *keeper.Keeper
	Module appmodule.AppModule
}

// ProvideModule wires up the offers module and its keeper. The gov module
// account is the authority allowed to update params.
func ProvideModule(in ModuleInputs) ModuleOutputs {
	authority := authtypes.NewModuleAddress(types.GovModuleName)

	k := keeper.NewKeeper(
		in.StoreService,
		in.EventService,
		in.AddressCodec,
		authority,
		in.BankKeeper,
	)
	m := NewAppModule(k, in.AddressCodec)
	return ModuleOutputs{Keeper: k, Module: m}
}
