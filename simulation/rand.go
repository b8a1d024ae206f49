package simulation

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"github.com/provlabs/offers/keeper"
	"github.com/provlabs/offers/types"
)

const (
	// DenomLengthExp bounds the length of generated denoms.
	DenomLengthExp = `{3,12}`

	Day = int64(86_400)

	MinBasePrice = 100_000_000
	MaxBasePrice = 10_000_000_000
	MaxAPR       = 200_000 // 20%
	MaxStartSkew = 30 * Day
	MaxBaseLag   = 7 * Day
)

// StepDurations are the compounding periods picked by generated vectors.
var StepDurations = []int64{3_600, Day, 7 * Day}

// genRandomDenom generates a random denom ending in suffix.
func genRandomDenom(r *rand.Rand, regex, suffix string) string {
	denom := strings.ToLower(randomUnrestrictedDenom(r, regex)) + suffix
	if err := sdk.ValidateDenom(denom); err != nil {
		// Denoms must start with a letter.
		return "d" + denom
	}
	return denom
}

// randomInt63 generates a random int64 between 0 and maxVal.
func randomInt63(r *rand.Rand, maxVal int64) (result int64) {
	if maxVal == 0 {
		return 0
	}
	return r.Int63n(maxVal)
}

// randomUnrestrictedDenom generates a random string for a denom based on the length constraints in the expression.
func randomUnrestrictedDenom(r *rand.Rand, unrestrictedDenomExp string) string {
	exp := regexp.MustCompile(`\{(\d+),(\d+)\}`)
	matches := exp.FindStringSubmatch(unrestrictedDenomExp)
	if len(matches) != 3 {
		panic("expected two number as range expression in unrestricted denom expression")
	}
	minLen, _ := strconv.ParseInt(matches[1], 10, 32)
	maxLen, _ := strconv.ParseInt(matches[2], 10, 32)

	return simtypes.RandStringOfLength(r, int(randomInt63(r, maxLen-minLen)+minLen))
}

// RandomVector creates vector parameters starting within MaxStartSkew of now.
// The vector id is left for insertion to assign.
func RandomVector(r *rand.Rand, now int64) types.Vector {
	start := now - MaxStartSkew/2 + randomInt63(r, MaxStartSkew)
	if start <= MaxBaseLag {
		start = MaxBaseLag + 1
	}
	return types.Vector{
		StartTime:        start,
		BaseTime:         start - randomInt63(r, MaxBaseLag),
		BasePrice:        uint64(MinBasePrice + randomInt63(r, MaxBasePrice-MinBasePrice)),
		APR:              uint64(randomInt63(r, MaxAPR+1)),
		PriceFixDuration: StepDurations[r.Intn(len(StepDurations))],
	}
}

// getRandomOffer selects a random offer from all existing offers.
func getRandomOffer(r *rand.Rand, k *keeper.Keeper, ctx sdk.Context) (types.Offer, error) {
	offers, err := k.GetOffers(ctx)
	if err != nil {
		return types.Offer{}, err
	}
	if len(offers) == 0 {
		return types.Offer{}, fmt.Errorf("no offers found")
	}
	return offers[r.Intn(len(offers))], nil
}

// getRandomOfferWithCondition gets a random offer that satisfies a given condition.
func getRandomOfferWithCondition(r *rand.Rand, k *keeper.Keeper, ctx sdk.Context, condition func(offer types.Offer) bool) (types.Offer, error) {
	offers, err := k.GetOffers(ctx)
	if err != nil {
		return types.Offer{}, err
	}

	var matching []types.Offer
	for _, offer := range offers {
		if condition(offer) {
			matching = append(matching, offer)
		}
	}
	if len(matching) == 0 {
		return types.Offer{}, fmt.Errorf("no offers found matching condition")
	}
	return matching[r.Intn(len(matching))], nil
}
