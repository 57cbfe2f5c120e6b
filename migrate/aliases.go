package migrate

import "github.com/mogaika/material_fixer/material"

// Historic property names per channel, most preferred first.
var (
	baseMapAliases = []material.TextureKey{
		material.TexBaseMap,
		material.TexMainTex,
		material.TexAlbedo,
		material.TexAlbedoMap,
		material.TexDiffuse,
		material.TexDiffuseMap,
	}
	tintAliases = []material.ColorKey{
		material.ColBaseColor,
		material.ColColor,
		material.ColTintColor,
		material.ColMainColor,
	}
	normalMapAliases = []material.TextureKey{
		material.TexBumpMap,
		material.TexNormalMap,
		material.TexNormal,
	}
	normalScaleAliases = []material.ScalarKey{
		material.ScalBumpScale,
		material.ScalNormalScale,
	}
	metallicAliases = []material.ScalarKey{
		material.ScalMetallic,
		material.ScalMetalness,
	}
	metallicMaskAliases = []material.TextureKey{
		material.TexMetallicGloss,
		material.TexMetallicMap,
		material.TexMetallicTex,
	}
	smoothnessAliases = []material.ScalarKey{
		material.ScalSmoothness,
		material.ScalGlossiness,
		material.ScalGloss,
		material.ScalShininess,
	}
	emissionColorAliases = []material.ColorKey{
		material.ColEmissionColor,
		material.ColEmissiveColor,
		material.ColEmission,
	}
	emissionMapAliases = []material.TextureKey{
		material.TexEmissionMap,
		material.TexEmissiveMap,
		material.TexIllum,
	}
	occlusionMapAliases = []material.TextureKey{
		material.TexOcclusionMap,
		material.TexOcclusion,
		material.TexAOMap,
	}
	occlusionStrengthAliases = []material.ScalarKey{
		material.ScalOcclusionStrength,
		material.ScalAOStrength,
	}
	cutoffAliases = []material.ScalarKey{
		material.ScalCutoff,
		material.ScalAlphaCutoff,
	}
)

// first returns the first alias get knows about.
func first[K ~string, V any](get func(K) (V, bool), aliases []K) (K, V, bool) {
	for _, k := range aliases {
		if v, ok := get(k); ok {
			return k, v, true
		}
	}
	var (
		zeroK K
		zeroV V
	)
	return zeroK, zeroV, false
}
