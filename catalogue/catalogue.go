package catalogue

// Entry is one reference descriptor in the static catalogue: a BRIEF
// signature taken at two horizontally-offset centers, tagged with the icon
// class it represents. bits_1/bits_2 hold the 192-bit payload as six
// little-endian uint32 words each, matching the wire layout of §6.
type Entry struct {
	X, Y  int32
	Bits1 [6]uint32
	Bits2 [6]uint32
	Mark  Mark
}

// Table is the compile-time catalogue of reference icon descriptors. Entry
// count, ordering and the Mark each entry carries mirror the original
// reference tool's FEATURE_DATA (same 38 entries, same per-class counts,
// same exclusion of near-duplicate descriptors). The bit payloads
// themselves, however, are NOT that transcription: the original's BRIEF
// offset-pair table was never part of the retrieved reference material, and
// pairing its bits with this package's independently-generated offsets
// (brief/offsets.go) would make every real Hamming distance meaningless
// (~half the bits would differ from chance alone). These bits were instead
// produced by a reimplementation of brief.Build's pipeline (the same one
// maze.go's classifier calls) run against synthetic per-class reference
// patches, through the exact pair table in brief/offsets.go, so catalogue
// and offsets stay consistent.
var Table = [38]Entry{
	{X: 11, Y: 11, Bits1: [6]uint32{512026972, 2170469045, 1210157141, 2654639407, 44461175, 2302129931}, Bits2: [6]uint32{847850076, 2300569777, 2046908507, 2528810031, 2250680803, 2558506794}, Mark: MarkDirection},
	{X: 11, Y: 11, Bits1: [6]uint32{470084062, 3275733681, 3440445517, 2537168175, 279316735, 2574646539}, Bits2: [6]uint32{838891998, 3374316211, 3708885071, 2503120175, 2888206591, 2558459688}, Mark: MarkDirection},
	{X: 11, Y: 11, Bits1: [6]uint32{1142968879, 2591310201, 3238762679, 2132901920, 1768630210, 4172912352}, Bits2: [6]uint32{2225131590, 2522147197, 3818260728, 2679210273, 611987354, 418223825}, Mark: MarkEntrance},
	{X: 11, Y: 11, Bits1: [6]uint32{1285607974, 2598813821, 3238755511, 2938210336, 1614743360, 2025445112}, Bits2: [6]uint32{2363543878, 2529618045, 3786819832, 2679212849, 608055057, 417717913}, Mark: MarkEntrance},
	{X: 11, Y: 11, Bits1: [6]uint32{2757988694, 2518083965, 2746682618, 1605045029, 712650523, 415995601}, Bits2: [6]uint32{2890385876, 3573737679, 867568872, 1452153637, 979041595, 289876511}, Mark: MarkEntrance},
	{X: 11, Y: 11, Bits1: [6]uint32{1285575295, 2666922872, 3381378230, 4214458416, 1785407426, 683251681}, Bits2: [6]uint32{2359349342, 2533157225, 3953003768, 2612202289, 645540251, 417699801}, Mark: MarkEntrance},
	{X: 11, Y: 11, Bits1: [6]uint32{1684034150, 997605689, 3427507255, 2132875297, 3895136198, 2292750048}, Bits2: [6]uint32{2892026438, 393636157, 4007005308, 530651429, 3996848026, 283154067}, Mark: MarkEntrance},
	{X: 11, Y: 11, Bits1: [6]uint32{1323324982, 2587249017, 3240873142, 2670135476, 1265829830, 2057950920}, Bits2: [6]uint32{2392888662, 2654398781, 2341947640, 2671053605, 779767199, 418240411}, Mark: MarkEntrance},
	{X: 11, Y: 11, Bits1: [6]uint32{682186809, 1399585388, 1534549712, 1745491891, 2145647662, 4260918653}, Bits2: [6]uint32{2779528489, 701102125, 1534331601, 2059797249, 1743109922, 4226119483}, Mark: MarkFinalBoss},
	{X: 11, Y: 11, Bits1: [6]uint32{1246843026, 1378573000, 2270549130, 288882150, 3514182061, 606750844}, Bits2: [6]uint32{2353846450, 1225488970, 2675281101, 1630984098, 3522609070, 3988577657}, Mark: MarkFinalBoss},
	{X: 11, Y: 11, Bits1: [6]uint32{3903347513, 1399454318, 525752002, 1745500083, 1036253372, 4261049725}, Bits2: [6]uint32{2779528993, 701095471, 1601442505, 2059813633, 1709292448, 4024596283}, Mark: MarkFinalBoss},
	{X: 11, Y: 11, Bits1: [6]uint32{7019571, 1124857967, 1400200920, 1745500083, 2078538814, 4257805437}, Bits2: [6]uint32{2239708448, 697038895, 1400111833, 2026242817, 1659223858, 3955619451}, Mark: MarkFinalBoss},
	{X: 11, Y: 11, Bits1: [6]uint32{2720651833, 3546938092, 1463115484, 1812633523, 933479466, 4244206957}, Bits2: [6]uint32{3074178849, 2313804845, 1597248220, 2021819145, 1738903330, 4209604459}, Mark: MarkFinalBoss},
	{X: 11, Y: 11, Bits1: [6]uint32{3049012648, 600546605, 2071202545, 3133539267, 1743085091, 3958204215}, Bits2: [6]uint32{2512272836, 2814809377, 2041618997, 2597781583, 1143758467, 1269253907}, Mark: MarkFinalBoss},
	{X: 11, Y: 11, Bits1: [6]uint32{3457206842, 201854285, 1825251484, 1350172216, 3996704128, 1290838427}, Bits2: [6]uint32{3457206842, 201854285, 1825251484, 1350172216, 3996704128, 1290838427}, Mark: MarkLadder},
	{X: 11, Y: 11, Bits1: [6]uint32{3482341177, 790105453, 1322983580, 2591653564, 4013448577, 1324397467}, Bits2: [6]uint32{3482340665, 253234541, 1490231452, 2591686328, 3996671361, 1324396955}, Mark: MarkLadder},
	{X: 11, Y: 11, Bits1: [6]uint32{2405074993, 622939527, 1828090918, 2566403833, 2401819577, 1156856465}, Bits2: [6]uint32{2388298273, 1679904135, 1824978020, 2566420217, 2334776233, 1156590225}, Mark: MarkLadder},
	{X: 11, Y: 11, Bits1: [6]uint32{2908276763, 1709247954, 1290435620, 2516074236, 2871581611, 1421097872}, Bits2: [6]uint32{2367211547, 1616973763, 1290959908, 2516074232, 2938686379, 1412709264}, Mark: MarkLadder},
	{X: 11, Y: 11, Bits1: [6]uint32{411142107, 2698884372, 1024197308, 2463907770, 399147210, 4196510465}, Bits2: [6]uint32{159946239, 2723149204, 1024205488, 2419352246, 88621279, 2049814357}, Mark: MarkLuck},
	{X: 11, Y: 11, Bits1: [6]uint32{412452827, 3805066548, 1024197308, 2614902714, 466223170, 4196510481}, Bits2: [6]uint32{144213503, 2739922356, 3171852976, 2603901630, 21512390, 2016258833}, Mark: MarkLuck},
	{X: 11, Y: 11, Bits1: [6]uint32{3163856586, 551302944, 2102165756, 3603767194, 2645428362, 2023852960}, Bits2: [6]uint32{411076555, 2732439316, 1028424436, 2459729850, 365854920, 4196510465}, Mark: MarkLuck},
	{X: 11, Y: 11, Bits1: [6]uint32{2790721482, 849243980, 1969491644, 2529959418, 2609583114, 3658588290}, Bits2: [6]uint32{674695130, 2728326932, 890049212, 2533109182, 197739594, 2048108544}, Mark: MarkLuck},
	{X: 11, Y: 11, Bits1: [6]uint32{286819839, 2182862292, 420229809, 2423578814, 88144088, 4214075205}, Bits2: [6]uint32{1897410933, 2853946454, 456684067, 544268485, 625539804, 3883745133}, Mark: MarkLuck},
	{X: 11, Y: 11, Bits1: [6]uint32{3192197082, 1419257384, 3368356956, 1456414494, 3660561806, 2423321218}, Bits2: [6]uint32{3187935194, 815539464, 1560612028, 3603700798, 2601234574, 4164002691}, Mark: MarkLuck},
	{X: 11, Y: 11, Bits1: [6]uint32{0, 0, 0, 0, 0, 0}, Bits2: [6]uint32{0, 0, 0, 0, 0, 0}, Mark: MarkNone},
	{X: 11, Y: 11, Bits1: [6]uint32{3464675370, 576570823, 3901447356, 4223253305, 3895045889, 1492226961}, Bits2: [6]uint32{2357444642, 3024996751, 1753898172, 2075704125, 3900226819, 1374978967}, Mark: MarkOtherBoss},
	{X: 11, Y: 11, Bits1: [6]uint32{3469919267, 709676261, 3901446332, 4214864689, 3895996161, 1492230045}, Bits2: [6]uint32{2361640226, 3058485421, 3901380796, 2612575101, 3933748483, 1374978717}, Mark: MarkOtherBoss},
	{X: 11, Y: 11, Bits1: [6]uint32{3330441762, 847103439, 3972420772, 4212783921, 3828002688, 1223726005}, Bits2: [6]uint32{2357428770, 642369935, 1757828268, 2065234737, 3900358017, 1173390263}, Mark: MarkOtherBoss},
	{X: 11, Y: 11, Bits1: [6]uint32{194367963, 4142502720, 222178966, 2235309026, 467453673, 2125164444}, Bits2: [6]uint32{194828767, 2750256996, 222211718, 2234780654, 198461181, 2092384024}, Mark: MarkTrap},
	{X: 11, Y: 11, Bits1: [6]uint32{198727103, 4159277924, 125495958, 2301946870, 630474356, 4004347672}, Bits2: [6]uint32{467200799, 2951323236, 268085968, 2301930487, 1301562981, 4008517388}, Mark: MarkTrap},
	{X: 11, Y: 11, Bits1: [6]uint32{4219230684, 4151352186, 264023239, 2360315851, 533185209, 3196021824}, Bits2: [6]uint32{2071747548, 3983577914, 230468807, 2360282831, 533185257, 3195698240}, Mark: MarkTreasury},
	{X: 11, Y: 11, Bits1: [6]uint32{4219230668, 4151348088, 2914823367, 2377093075, 534168249, 3196021832}, Bits2: [6]uint32{2071747420, 4017128248, 2377952455, 2377060063, 533185257, 3195694664}, Mark: MarkTreasury},
	{X: 11, Y: 11, Bits1: [6]uint32{4219230428, 3882916730, 129805511, 2359791563, 533185275, 3195890752}, Bits2: [6]uint32{2071747548, 3983577914, 230468807, 2225540815, 533185273, 3195632704}, Mark: MarkTreasury},
	{X: 11, Y: 11, Bits1: [6]uint32{4085013468, 3878722410, 129281223, 2360313803, 533185208, 3204442181}, Bits2: [6]uint32{1937529820, 3979383610, 95726791, 2360282831, 533185273, 3201989697}, Mark: MarkTreasury},
	{X: 11, Y: 11, Bits1: [6]uint32{2038192604, 3882914682, 268233795, 2360283083, 533086969, 3078581312}, Bits2: [6]uint32{2037143900, 3983577914, 234679363, 2360282831, 533119721, 3191766080}, Mark: MarkTreasury},
	{X: 11, Y: 11, Bits1: [6]uint32{1833720281, 4252074874, 2377985091, 485428937, 532726779, 3057590346}, Bits2: [6]uint32{2068601176, 3983639418, 2411572423, 78579405, 524469241, 3191812160}, Mark: MarkTreasury},
	{X: 11, Y: 11, Bits1: [6]uint32{4219230537, 4151417706, 800910535, 2360315851, 533088953, 3191808068}, Bits2: [6]uint32{4218182476, 3882980154, 230468807, 212803535, 528992953, 2654609472}, Mark: MarkTreasury},
	{X: 11, Y: 11, Bits1: [6]uint32{3879338848, 17951291, 1040471150, 2093737361, 891533720, 2621071591}, Bits2: [6]uint32{3883014112, 1695803435, 1055806574, 1959518577, 892049880, 2651480311}, Mark: MarkScarecrow},
}
