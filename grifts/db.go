package grifts

import (
	"fmt"

	"github.com/gobuffalo/events"
	"github.com/gobuffalo/grift/grift"
	"github.com/gobuffalo/pop/v6"

	"github.com/titleround/title-api/domain"
	"github.com/titleround/title-api/models"
)

var _ = grift.Namespace("db", func() {
	grift.Desc("seed", "Seeds the rate books for all supported jurisdictions")
	_ = grift.Add("seed", func(c *grift.Context) error {
		count, err := models.DB.Count(models.RateTiers{})
		if err != nil {
			return err
		}

		if count > 1 {
			fmt.Printf("\nINFO: It appears that the grifts have already been run, "+
				"since there are already %v rate tiers.\n", count)
			return nil
		}

		txSeed, err := txDefaultSeed()
		if err != nil {
			return err
		}

		seeds := []bookSeed{
			caTRGSeed(),
			caORTSeed(),
			azTRGSeed(),
			azORTSeed(),
			ncTRGSeed(),
			flTRGSeed(),
			txSeed,
		}

		return models.DB.Transaction(func(tx *pop.Connection) error {
			for _, seed := range seeds {
				if err := seed.create(tx); err != nil {
					return fmt.Errorf("seeding %s/%s rate book: %w",
						seed.State, seed.Underwriter, err)
				}

				e := events.Event{
					Kind:    domain.EventApiRateBookSeeded,
					Message: fmt.Sprintf("rate book seeded: %s/%s", seed.State, seed.Underwriter),
					Payload: events.Payload{
						"state":       seed.State,
						"underwriter": seed.Underwriter,
					},
				}
				if err := events.Emit(e); err != nil {
					fmt.Printf("\nWARN: failed to emit event for %s/%s: %s\n",
						seed.State, seed.Underwriter, err)
				}
			}
			return nil
		})
	})
})
