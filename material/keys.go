package material

// Property names a bag can be queried by. Several historic names exist for
// most channels; the migrate package decides which of them win.
type (
	TextureKey string
	ColorKey   string
	ScalarKey  string
	Keyword    string
)

const (
	TexBaseMap       TextureKey = "_BaseMap"
	TexMainTex       TextureKey = "_MainTex"
	TexAlbedo        TextureKey = "_Albedo"
	TexAlbedoMap     TextureKey = "_AlbedoMap"
	TexDiffuse       TextureKey = "_Diffuse"
	TexDiffuseMap    TextureKey = "_DiffuseMap"
	TexBumpMap       TextureKey = "_BumpMap"
	TexNormalMap     TextureKey = "_NormalMap"
	TexNormal        TextureKey = "_Normal"
	TexMetallicGloss TextureKey = "_MetallicGlossMap"
	TexMetallicMap   TextureKey = "_MetallicMap"
	TexMetallicTex   TextureKey = "_MetallicTex"
	TexSpecGlossMap  TextureKey = "_SpecGlossMap"
	TexEmissionMap   TextureKey = "_EmissionMap"
	TexEmissiveMap   TextureKey = "_EmissiveMap"
	TexIllum         TextureKey = "_Illum"
	TexOcclusionMap  TextureKey = "_OcclusionMap"
	TexOcclusion     TextureKey = "_Occlusion"
	TexAOMap         TextureKey = "_AOMap"
)

const (
	ColBaseColor     ColorKey = "_BaseColor"
	ColColor         ColorKey = "_Color"
	ColTintColor     ColorKey = "_TintColor"
	ColMainColor     ColorKey = "_MainColor"
	ColEmissionColor ColorKey = "_EmissionColor"
	ColEmissiveColor ColorKey = "_EmissiveColor"
	ColEmission      ColorKey = "_Emission"
	ColSpecColor     ColorKey = "_SpecColor"
)

const (
	ScalBumpScale         ScalarKey = "_BumpScale"
	ScalNormalScale       ScalarKey = "_NormalScale"
	ScalMetallic          ScalarKey = "_Metallic"
	ScalMetalness         ScalarKey = "_Metalness"
	ScalSmoothness        ScalarKey = "_Smoothness"
	ScalGlossiness        ScalarKey = "_Glossiness"
	ScalGloss             ScalarKey = "_Gloss"
	ScalShininess         ScalarKey = "_Shininess"
	ScalRoughness         ScalarKey = "_Roughness"
	ScalOcclusionStrength ScalarKey = "_OcclusionStrength"
	ScalAOStrength        ScalarKey = "_AOStrength"
	ScalCutoff            ScalarKey = "_Cutoff"
	ScalAlphaCutoff       ScalarKey = "_AlphaCutoff"
	ScalMode              ScalarKey = "_Mode"
	ScalWorkflowMode      ScalarKey = "_WorkflowMode"
	ScalSurface           ScalarKey = "_Surface"
	ScalBlend             ScalarKey = "_Blend"
	ScalAlphaClip         ScalarKey = "_AlphaClip"
	ScalSrcBlend          ScalarKey = "_SrcBlend"
	ScalDstBlend          ScalarKey = "_DstBlend"
	ScalZWrite            ScalarKey = "_ZWrite"
)

const (
	KwNormalMap          Keyword = "_NORMALMAP"
	KwMetallicGlossMap   Keyword = "_METALLICSPECGLOSSMAP"
	KwSpecularSetup      Keyword = "_SPECULAR_SETUP"
	KwEmission           Keyword = "_EMISSION"
	KwOcclusionMap       Keyword = "_OCCLUSIONMAP"
	KwAlphaTestOn        Keyword = "_ALPHATEST_ON"
	KwSurfaceTransparent Keyword = "_SURFACE_TYPE_TRANSPARENT"
)

// DrawOrderFromModel means the bag does not override the draw order of its
// shading model.
const DrawOrderFromModel = -1
