package config

// DefaultSynergyTable is the built-in category table used when no synergy
// table is supplied. One category per line:
//
//	category | keywords | opportunities | target-categories
const DefaultSynergyTable = `Financial Services | accountant, lawyer, bookkeeper, notary, banking, insurance | referrals, audits, estate planning | Business Services, Real Estate
Food & Wellness | restaurant, food wholesale, nutritionist, supplements, cold chain, fitness | catering, bulk supply | Lifestyle
Media & Marketing | digital marketing, photography, graphic design, pr events, social media, influencer | campaigns, branding | Business Services, Beauty & Image
Design & Construction | interior design, cabinetry, plumbing, home staging, carpentry, architect | renovations, fit-outs | Real Estate
Business Services | corporate training, software, legal counsel, labor relations, office furniture, hr | onboarding, systems | Financial Services
International Trade | import export, freight, customs broker, translation, cross-border ecommerce, overseas warehouse | logistics, sourcing | Business Services
Real Estate | realtor, land development, home inspection, cleaning, moving services, feng shui | listings, staging | Design & Construction, Financial Services
Mind & Body | counselor, aromatherapy, tarot, sound healing, yoga, meditation | workshops, retreats | Food & Wellness
Beauty & Image | cosmetologist, bridal styling, aesthetic clinic, nails lashes, personal styling, apparel | makeovers, events | Media & Marketing
Lifestyle | tea trade, wine, boutique travel, pet grooming, specialty retail, jewelry | tastings, tours | Beauty & Image`
