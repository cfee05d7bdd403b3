package template

import "github.com/sitesmith/sitesmith/internal/toon"

// Builtin returns the stock catalog. Each entry's code is a self-contained
// React component with Tailwind classes; placeholders follow the {{variable}}
// convention.
func Builtin() []Template {
	return []Template{
		{
			ID:          "minimal-landing-1",
			Name:        "Minimal Landing Page",
			Description: "Clean, centered hero with features grid",
			Spec: toon.Spec{
				SiteType: toon.SiteLanding,
				Style:    toon.StyleMinimalist,
				Sections: []toon.Section{
					{Type: toon.CompHero, Layout: "ctr"},
					{Type: toon.CompFeatures, Layout: "gr3"},
					{Type: toon.CompContact, Layout: "ctr"},
				},
			},
			Code:      minimalLandingCode,
			Variables: []string{"title", "subtitle", "cta_text"},
			Tags:      []string{"landing", "minimal", "clean", "simple"},
		},
		{
			ID:          "corporate-landing-1",
			Name:        "Corporate Landing Page",
			Description: "Professional split hero with features and pricing",
			Spec: toon.Spec{
				SiteType: toon.SiteLanding,
				Style:    toon.StyleCorporate,
				Sections: []toon.Section{
					{Type: toon.CompHero, Layout: "spl"},
					{Type: toon.CompFeatures, Layout: "gr3"},
					{Type: toon.CompPricing, Layout: "gr3"},
					{Type: toon.CompContact, Layout: "ctr"},
				},
			},
			Code:      corporateLandingCode,
			Variables: []string{"title", "subtitle"},
			Tags:      []string{"landing", "corporate", "professional", "business", "pricing"},
		},
		{
			ID:          "portfolio-creative-1",
			Name:        "Creative Portfolio",
			Description: "Modern portfolio with project gallery",
			Spec: toon.Spec{
				SiteType: toon.SitePortfolio,
				Style:    toon.StyleCreative,
				Sections: []toon.Section{
					{Type: toon.CompHero, Layout: "ctr"},
					{Type: toon.CompGallery, Layout: "gr3"},
					{Type: toon.CompContact, Layout: "ctr"},
				},
			},
			Code:      creativePortfolioCode,
			Variables: []string{"name", "role", "bio"},
			Tags:      []string{"portfolio", "creative", "modern", "gallery"},
		},
	}
}

const minimalLandingCode = `export default function MinimalLanding() {
  return (
    <div className="min-h-screen bg-white">
      <section className="py-20 px-4">
        <div className="max-w-4xl mx-auto text-center">
          <h1 className="text-5xl md:text-6xl font-bold mb-6 text-gray-900">
            {{title}}
          </h1>
          <p className="text-xl md:text-2xl text-gray-600 mb-8">
            {{subtitle}}
          </p>
          <button className="px-8 py-4 bg-blue-600 text-white text-lg font-semibold rounded-lg hover:bg-blue-700 transition-colors">
            {{cta_text}}
          </button>
        </div>
      </section>

      <section className="py-20 px-4 bg-gray-50">
        <div className="max-w-6xl mx-auto">
          <div className="grid grid-cols-1 md:grid-cols-3 gap-8">
            <div className="p-6 bg-white rounded-lg shadow-sm">
              <h3 className="text-xl font-bold mb-2">Fast</h3>
              <p className="text-gray-600">Lightning-fast performance and load times</p>
            </div>
            <div className="p-6 bg-white rounded-lg shadow-sm">
              <h3 className="text-xl font-bold mb-2">Beautiful</h3>
              <p className="text-gray-600">Clean, modern design that looks great</p>
            </div>
            <div className="p-6 bg-white rounded-lg shadow-sm">
              <h3 className="text-xl font-bold mb-2">Secure</h3>
              <p className="text-gray-600">Built with security best practices</p>
            </div>
          </div>
        </div>
      </section>

      <section className="py-20 px-4">
        <div className="max-w-md mx-auto">
          <h2 className="text-3xl font-bold text-center mb-8">Get in Touch</h2>
          <form className="space-y-4">
            <input
              type="email"
              placeholder="Your email"
              className="w-full px-4 py-3 border border-gray-300 rounded-lg"
            />
            <textarea
              placeholder="Your message"
              rows={4}
              className="w-full px-4 py-3 border border-gray-300 rounded-lg"
            />
            <button
              type="submit"
              className="w-full px-6 py-3 bg-blue-600 text-white font-semibold rounded-lg hover:bg-blue-700 transition-colors"
            >
              Send Message
            </button>
          </form>
        </div>
      </section>
    </div>
  )
}`

const corporateLandingCode = `export default function CorporateLanding() {
  return (
    <div className="min-h-screen bg-white">
      <section className="py-20 px-4">
        <div className="max-w-7xl mx-auto">
          <div className="grid grid-cols-1 md:grid-cols-2 gap-12 items-center">
            <div>
              <h1 className="text-4xl md:text-5xl font-bold mb-6 text-gray-900">
                {{title}}
              </h1>
              <p className="text-lg text-gray-600 mb-8">
                {{subtitle}}
              </p>
              <button className="px-8 py-4 bg-blue-700 text-white font-semibold rounded-lg hover:bg-blue-800 transition-colors">
                Request a Demo
              </button>
            </div>
            <div className="bg-gray-100 rounded-xl aspect-video" />
          </div>
        </div>
      </section>

      <section className="py-20 px-4 bg-gray-50">
        <div className="max-w-6xl mx-auto">
          <h2 className="text-3xl font-bold text-center mb-12">Why Choose Us</h2>
          <div className="grid grid-cols-1 md:grid-cols-3 gap-8">
            <div className="p-6 bg-white rounded-lg border border-gray-200">
              <h3 className="text-xl font-bold mb-2">Reliable</h3>
              <p className="text-gray-600">Enterprise-grade reliability you can count on</p>
            </div>
            <div className="p-6 bg-white rounded-lg border border-gray-200">
              <h3 className="text-xl font-bold mb-2">Scalable</h3>
              <p className="text-gray-600">Grows with your business, from startup to enterprise</p>
            </div>
            <div className="p-6 bg-white rounded-lg border border-gray-200">
              <h3 className="text-xl font-bold mb-2">Supported</h3>
              <p className="text-gray-600">Dedicated support team available around the clock</p>
            </div>
          </div>
        </div>
      </section>

      <section className="py-20 px-4">
        <div className="max-w-5xl mx-auto">
          <h2 className="text-3xl font-bold text-center mb-12">Pricing</h2>
          <div className="grid grid-cols-1 md:grid-cols-3 gap-8">
            <div className="p-8 rounded-lg border border-gray-200">
              <h3 className="text-lg font-semibold mb-2">Starter</h3>
              <p className="text-4xl font-bold mb-6">$29<span className="text-base text-gray-500">/mo</span></p>
              <button className="w-full py-3 border border-blue-700 text-blue-700 rounded-lg">Choose Starter</button>
            </div>
            <div className="p-8 rounded-lg border-2 border-blue-700 shadow-lg">
              <h3 className="text-lg font-semibold mb-2">Business</h3>
              <p className="text-4xl font-bold mb-6">$79<span className="text-base text-gray-500">/mo</span></p>
              <button className="w-full py-3 bg-blue-700 text-white rounded-lg">Choose Business</button>
            </div>
            <div className="p-8 rounded-lg border border-gray-200">
              <h3 className="text-lg font-semibold mb-2">Enterprise</h3>
              <p className="text-4xl font-bold mb-6">Custom</p>
              <button className="w-full py-3 border border-blue-700 text-blue-700 rounded-lg">Contact Sales</button>
            </div>
          </div>
        </div>
      </section>

      <section className="py-20 px-4 bg-gray-50">
        <div className="max-w-md mx-auto text-center">
          <h2 className="text-3xl font-bold mb-8">Talk to Our Team</h2>
          <form className="space-y-4">
            <input
              type="email"
              placeholder="Work email"
              className="w-full px-4 py-3 border border-gray-300 rounded-lg"
            />
            <button
              type="submit"
              className="w-full px-6 py-3 bg-blue-700 text-white font-semibold rounded-lg hover:bg-blue-800 transition-colors"
            >
              Get Started
            </button>
          </form>
        </div>
      </section>
    </div>
  )
}`

const creativePortfolioCode = `export default function CreativePortfolio() {
  return (
    <div className="min-h-screen bg-gray-900 text-white">
      <section className="py-32 px-4">
        <div className="max-w-4xl mx-auto text-center">
          <h1 className="text-6xl md:text-7xl font-bold mb-6 bg-gradient-to-r from-purple-400 to-pink-600 bg-clip-text text-transparent">
            {{name}}
          </h1>
          <p className="text-2xl text-gray-300 mb-4">
            {{role}}
          </p>
          <p className="text-lg text-gray-400">
            {{bio}}
          </p>
        </div>
      </section>

      <section className="py-20 px-4">
        <div className="max-w-7xl mx-auto">
          <h2 className="text-4xl font-bold mb-12 text-center">Featured Work</h2>
          <div className="grid grid-cols-1 md:grid-cols-3 gap-6">
            {[1, 2, 3, 4, 5, 6].map((i) => (
              <div key={i} className="group relative aspect-square bg-gradient-to-br from-purple-900 to-pink-900 rounded-lg overflow-hidden cursor-pointer">
                <div className="absolute inset-0 bg-black bg-opacity-50 opacity-0 group-hover:opacity-100 transition-opacity flex items-center justify-center">
                  <div className="text-center">
                    <h3 className="text-xl font-bold mb-2">Project {i}</h3>
                    <p className="text-gray-300">View Details</p>
                  </div>
                </div>
              </div>
            ))}
          </div>
        </div>
      </section>

      <section className="py-20 px-4">
        <div className="max-w-2xl mx-auto text-center">
          <h2 className="text-4xl font-bold mb-8">Let's Work Together</h2>
          <p className="text-xl text-gray-400 mb-8">
            Have a project in mind? Let's create something amazing.
          </p>
          <button className="px-8 py-4 bg-gradient-to-r from-purple-600 to-pink-600 text-white text-lg font-semibold rounded-lg hover:from-purple-700 hover:to-pink-700 transition-all">
            Get in Touch
          </button>
        </div>
      </section>
    </div>
  )
}`
