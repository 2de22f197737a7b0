package cms

import "github.com/kyctrust/kyctrust-manager/internal/entity"

const defaultLogoSrc = "/images/brand/novapay-logo.png"

// DefaultState is the factory draft used on first run and as the repair
// source for broken persisted payloads.
func DefaultState() State {
	return State{
		Version: Version,
		Locale:  entity.LocaleAr,
		Content: map[entity.Locale]*entity.Bundle{
			entity.LocaleAr: defaultBundle(entity.LocaleAr),
			entity.LocaleEn: defaultBundle(entity.LocaleEn),
		},
		Design: defaultDesign(),
		Blocks: defaultBlocks(),
	}
}

func defaultDesign() entity.Design {
	return entity.Design{
		Palette: "violet",
		Anim: entity.AnimConfig{
			EnableReveal: true,
			Intensity:    1,
			Parallax:     14,
		},
	}
}

func defaultBlocks() []entity.BlockConfig {
	kinds := []entity.BlockKind{
		entity.BlockHero,
		entity.BlockLogos,
		entity.BlockFeatures,
		entity.BlockServices,
		entity.BlockPayments,
		entity.BlockTestimonials,
		entity.BlockFAQ,
		entity.BlockCTA,
		entity.BlockContact,
	}
	blocks := make([]entity.BlockConfig, 0, len(kinds))
	for _, k := range kinds {
		blocks = append(blocks, entity.BlockConfig{
			Id:      string(k),
			Type:    k,
			Enabled: true,
		})
	}
	return blocks
}

func defaultBundle(locale entity.Locale) *entity.Bundle {
	if locale == entity.LocaleAr {
		return &entity.Bundle{
			Site: entity.SiteMeta{
				Name:        "كي واي سي ترست",
				Tagline:     "خدمات مالية موثوقة",
				Description: "حسابات مالية رقمية وخدمات تحقق للأفراد والشركات",
				LogoSrc:     defaultLogoSrc,
			},
			Hero: entity.Hero{
				Title:    "ابدأ حسابك المالي الرقمي اليوم",
				Subtitle: "تفعيل سريع، دعم متواصل، وأسعار واضحة",
				CTAText:  "اطلب الخدمة",
				Stats: []entity.HeroStat{
					{Label: "عميل", Value: "+1200"},
					{Label: "خدمة", Value: "+15"},
					{Label: "سنوات خبرة", Value: "5"},
				},
			},
			Logos:        []entity.Logo{},
			Features:     []entity.Feature{},
			Services:     []entity.Service{},
			Payments:     []entity.Payment{},
			Testimonials: []entity.Testimonial{},
			FAQ:          []entity.FAQItem{},
			Contact: entity.ContactCopy{
				Title:    "تواصل معنا",
				Subtitle: "نرد خلال ساعات العمل",
			},
			CTA: entity.CTACopy{
				Title:  "جاهز للانطلاق؟",
				Button: "ابدأ الآن",
			},
		}
	}
	return &entity.Bundle{
		Site: entity.SiteMeta{
			Name:        "KYCtrust",
			Tagline:     "Trusted financial services",
			Description: "Digital financial accounts and verification services for individuals and businesses",
			LogoSrc:     defaultLogoSrc,
		},
		Hero: entity.Hero{
			Title:    "Start your digital financial account today",
			Subtitle: "Fast activation, continuous support, transparent pricing",
			CTAText:  "Request service",
			Stats: []entity.HeroStat{
				{Label: "clients", Value: "+1200"},
				{Label: "services", Value: "+15"},
				{Label: "years", Value: "5"},
			},
		},
		Logos:        []entity.Logo{},
		Features:     []entity.Feature{},
		Services:     []entity.Service{},
		Payments:     []entity.Payment{},
		Testimonials: []entity.Testimonial{},
		FAQ:          []entity.FAQItem{},
		Contact: entity.ContactCopy{
			Title:    "Get in touch",
			Subtitle: "We reply during business hours",
		},
		CTA: entity.CTACopy{
			Title:  "Ready to start?",
			Button: "Start now",
		},
	}
}
