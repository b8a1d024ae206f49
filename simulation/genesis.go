package simulation

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/cosmos/cosmos-sdk/types/module"

	"github.com/provlabs/offers/curve"
	"github.com/provlabs/offers/types"
)

const (
	MaxNumOffers          = 5
	ChanceOfNoOperator    = 10 // 1 in X
	ChanceOfFutureVectors = 2  // 1 in X
)

// RandomizedGenState generates a random GenesisState for the offers module
func RandomizedGenState(simState *module.SimulationState) {
	params := types.DefaultParams()
	if simState.Rand.Intn(ChanceOfNoOperator) != 0 {
		params.Operator = simState.Accounts[0].Address.String()
	}

	offers := randomOffers(simState.Rand, simState.GenTimestamp.Unix())
	offersGenesis := types.GenesisState{
		Params:        params,
		Offers:        offers,
		OfferSequence: uint64(len(offers)),
	}

	bz, err := json.MarshalIndent(&offersGenesis, "", " ")
	if err != nil {
		panic(err)
	}
	fmt.Printf("Selected randomly generated offers parameters: %s\n", bz)

	simState.GenState[types.ModuleName] = bz
}

func randomOffers(r *rand.Rand, now int64) []types.Offer {
	offers := []types.Offer{}
	for i := 0; i < r.Intn(MaxNumOffers)+1; i++ {
		offers = append(offers, RandomOffer(r, uint64(i+1), now))
	}
	return offers
}

// RandomOffer creates an offer with the given id holding up to MaxVectors random vectors.
func RandomOffer(r *rand.Rand, id uint64, now int64) types.Offer {
	offer := types.NewOffer(
		id,
		genRandomDenom(r, DenomLengthExp, fmt.Sprintf("in%d", id)),
		genRandomDenom(r, DenomLengthExp, fmt.Sprintf("out%d", id)),
		uint64(r.Intn(types.MaxFeeBasisPoints/10+1)),
	)

	for j := 0; j < r.Intn(types.MaxVectors+1); j++ {
		v := RandomVector(r, now)
		if r.Intn(ChanceOfFutureVectors) == 0 && v.StartTime <= now {
			v.StartTime, v.BaseTime = now+(now-v.StartTime)+1, now
		}
		// Colliding start times are skipped.
		_, _ = curve.InsertVector(&offer, v)
	}
	return offer
}
