package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vochicuongg/mrleetravel/internal/booking"
	"github.com/vochicuongg/mrleetravel/internal/domain"
	"github.com/vochicuongg/mrleetravel/internal/i18n"
	"github.com/vochicuongg/mrleetravel/internal/utils"
)

// lang resolves the storefront language from the query string.
func lang(c *gin.Context) i18n.Lang {
	l := i18n.Lang(c.Query("lang"))
	if !i18n.Valid(l) {
		return i18n.DefaultLang
	}
	return l
}

type vehicleView struct {
	domain.Vehicle
	PriceLabel string              `json:"priceLabel"`
	UnitLabel  string              `json:"unitLabel"`
	PromoTiers []booking.PromoTier `json:"promoTiers,omitempty"`
}

func (a API) viewOf(v domain.Vehicle, l i18n.Lang) vehicleView {
	return vehicleView{
		Vehicle:    v,
		PriceLabel: utils.FormatVND(v.BasePrice),
		UnitLabel:  i18n.T(l, v.PriceUnit),
		PromoTiers: booking.PromoTiers(v),
	}
}

// GET /api/vehicles?category=&lang=
func (a API) ListVehicles(c *gin.Context) {
	l := lang(c)

	var list []domain.Vehicle
	if cat := c.Query("category"); cat != "" {
		var err error
		if list, err = a.Catalog.ByCategory(domain.Category(cat)); err != nil {
			RespondDomainError(c, err)
			return
		}
	} else {
		list = a.Catalog.All()
	}

	out := make([]vehicleView, 0, len(list))
	for _, v := range list {
		out = append(out, a.viewOf(v, l))
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": out})
}

// GET /api/vehicles/:id?lang=
func (a API) GetVehicle(c *gin.Context) {
	v, err := a.Catalog.ByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, a.viewOf(v, lang(c)))
}
