package blasbridge

// Typed registration entry points, one per routine. Each stores or
// replaces the kernel under its routine identity; the last write wins.
// Registering a nil kernel panics. There is deliberately no unregister:
// replace the kernel instead, or Reset the backend.

// Level 1.

// RegisterSrotg binds the srotg kernel.
func (be *Backend) RegisterSrotg(fn SrotgKernel) { be.put("srotg", eraseFunc(fn)) }

// RegisterDrotg binds the drotg kernel.
func (be *Backend) RegisterDrotg(fn DrotgKernel) { be.put("drotg", eraseFunc(fn)) }

// RegisterSrotmg binds the srotmg kernel.
func (be *Backend) RegisterSrotmg(fn SrotmgKernel) { be.put("srotmg", eraseFunc(fn)) }

// RegisterDrotmg binds the drotmg kernel.
func (be *Backend) RegisterDrotmg(fn DrotmgKernel) { be.put("drotmg", eraseFunc(fn)) }

// RegisterSrot binds the srot kernel.
func (be *Backend) RegisterSrot(fn SrotKernel) { be.put("srot", eraseFunc(fn)) }

// RegisterDrot binds the drot kernel.
func (be *Backend) RegisterDrot(fn DrotKernel) { be.put("drot", eraseFunc(fn)) }

// RegisterSrotm binds the srotm kernel.
func (be *Backend) RegisterSrotm(fn SrotmKernel) { be.put("srotm", eraseFunc(fn)) }

// RegisterDrotm binds the drotm kernel.
func (be *Backend) RegisterDrotm(fn DrotmKernel) { be.put("drotm", eraseFunc(fn)) }

// RegisterSswap binds the sswap kernel.
func (be *Backend) RegisterSswap(fn SswapKernel) { be.put("sswap", eraseFunc(fn)) }

// RegisterDswap binds the dswap kernel.
func (be *Backend) RegisterDswap(fn DswapKernel) { be.put("dswap", eraseFunc(fn)) }

// RegisterCswap binds the cswap kernel.
func (be *Backend) RegisterCswap(fn CswapKernel) { be.put("cswap", eraseFunc(fn)) }

// RegisterZswap binds the zswap kernel.
func (be *Backend) RegisterZswap(fn ZswapKernel) { be.put("zswap", eraseFunc(fn)) }

// RegisterScopy binds the scopy kernel.
func (be *Backend) RegisterScopy(fn ScopyKernel) { be.put("scopy", eraseFunc(fn)) }

// RegisterDcopy binds the dcopy kernel.
func (be *Backend) RegisterDcopy(fn DcopyKernel) { be.put("dcopy", eraseFunc(fn)) }

// RegisterCcopy binds the ccopy kernel.
func (be *Backend) RegisterCcopy(fn CcopyKernel) { be.put("ccopy", eraseFunc(fn)) }

// RegisterZcopy binds the zcopy kernel.
func (be *Backend) RegisterZcopy(fn ZcopyKernel) { be.put("zcopy", eraseFunc(fn)) }

// RegisterSaxpy binds the saxpy kernel.
func (be *Backend) RegisterSaxpy(fn SaxpyKernel) { be.put("saxpy", eraseFunc(fn)) }

// RegisterDaxpy binds the daxpy kernel.
func (be *Backend) RegisterDaxpy(fn DaxpyKernel) { be.put("daxpy", eraseFunc(fn)) }

// RegisterCaxpy binds the caxpy kernel.
func (be *Backend) RegisterCaxpy(fn CaxpyKernel) { be.put("caxpy", eraseFunc(fn)) }

// RegisterZaxpy binds the zaxpy kernel.
func (be *Backend) RegisterZaxpy(fn ZaxpyKernel) { be.put("zaxpy", eraseFunc(fn)) }

// RegisterSscal binds the sscal kernel.
func (be *Backend) RegisterSscal(fn SscalKernel) { be.put("sscal", eraseFunc(fn)) }

// RegisterDscal binds the dscal kernel.
func (be *Backend) RegisterDscal(fn DscalKernel) { be.put("dscal", eraseFunc(fn)) }

// RegisterCscal binds the cscal kernel.
func (be *Backend) RegisterCscal(fn CscalKernel) { be.put("cscal", eraseFunc(fn)) }

// RegisterZscal binds the zscal kernel.
func (be *Backend) RegisterZscal(fn ZscalKernel) { be.put("zscal", eraseFunc(fn)) }

// RegisterCsscal binds the csscal kernel.
func (be *Backend) RegisterCsscal(fn CsscalKernel) { be.put("csscal", eraseFunc(fn)) }

// RegisterZdscal binds the zdscal kernel.
func (be *Backend) RegisterZdscal(fn ZdscalKernel) { be.put("zdscal", eraseFunc(fn)) }

// RegisterSdot binds the sdot kernel.
func (be *Backend) RegisterSdot(fn SdotKernel) { be.put("sdot", eraseFunc(fn)) }

// RegisterDdot binds the ddot kernel.
func (be *Backend) RegisterDdot(fn DdotKernel) { be.put("ddot", eraseFunc(fn)) }

// RegisterDsdot binds the dsdot kernel.
func (be *Backend) RegisterDsdot(fn DsdotKernel) { be.put("dsdot", eraseFunc(fn)) }

// RegisterSdsdot binds the sdsdot kernel.
func (be *Backend) RegisterSdsdot(fn SdsdotKernel) { be.put("sdsdot", eraseFunc(fn)) }

// RegisterCdotu binds the cdotu kernel. The handle carries no convention
// of its own; the backend's complex return style decides how it is
// called, so the style must describe the routine behind the handle.
func (be *Backend) RegisterCdotu(k DotKernel) { be.put(Cdotu, k.fp) }

// RegisterCdotc binds the cdotc kernel. See RegisterCdotu for the
// convention caveat.
func (be *Backend) RegisterCdotc(k DotKernel) { be.put(Cdotc, k.fp) }

// RegisterZdotu binds the zdotu kernel. See RegisterCdotu for the
// convention caveat.
func (be *Backend) RegisterZdotu(k DotKernel) { be.put(Zdotu, k.fp) }

// RegisterZdotc binds the zdotc kernel. See RegisterCdotu for the
// convention caveat.
func (be *Backend) RegisterZdotc(k DotKernel) { be.put(Zdotc, k.fp) }

// RegisterSnrm2 binds the snrm2 kernel.
func (be *Backend) RegisterSnrm2(fn Snrm2Kernel) { be.put("snrm2", eraseFunc(fn)) }

// RegisterDnrm2 binds the dnrm2 kernel.
func (be *Backend) RegisterDnrm2(fn Dnrm2Kernel) { be.put("dnrm2", eraseFunc(fn)) }

// RegisterScnrm2 binds the scnrm2 kernel.
func (be *Backend) RegisterScnrm2(fn Scnrm2Kernel) { be.put("scnrm2", eraseFunc(fn)) }

// RegisterDznrm2 binds the dznrm2 kernel.
func (be *Backend) RegisterDznrm2(fn Dznrm2Kernel) { be.put("dznrm2", eraseFunc(fn)) }

// RegisterSasum binds the sasum kernel.
func (be *Backend) RegisterSasum(fn SasumKernel) { be.put("sasum", eraseFunc(fn)) }

// RegisterDasum binds the dasum kernel.
func (be *Backend) RegisterDasum(fn DasumKernel) { be.put("dasum", eraseFunc(fn)) }

// RegisterScasum binds the scasum kernel.
func (be *Backend) RegisterScasum(fn ScasumKernel) { be.put("scasum", eraseFunc(fn)) }

// RegisterDzasum binds the dzasum kernel.
func (be *Backend) RegisterDzasum(fn DzasumKernel) { be.put("dzasum", eraseFunc(fn)) }

// RegisterIsamax binds the isamax kernel.
func (be *Backend) RegisterIsamax(fn IsamaxKernel) { be.put("isamax", eraseFunc(fn)) }

// RegisterIdamax binds the idamax kernel.
func (be *Backend) RegisterIdamax(fn IdamaxKernel) { be.put("idamax", eraseFunc(fn)) }

// RegisterIcamax binds the icamax kernel.
func (be *Backend) RegisterIcamax(fn IcamaxKernel) { be.put("icamax", eraseFunc(fn)) }

// RegisterIzamax binds the izamax kernel.
func (be *Backend) RegisterIzamax(fn IzamaxKernel) { be.put("izamax", eraseFunc(fn)) }

// RegisterScabs1 binds the scabs1 kernel.
func (be *Backend) RegisterScabs1(fn Scabs1Kernel) { be.put("scabs1", eraseFunc(fn)) }

// RegisterDcabs1 binds the dcabs1 kernel.
func (be *Backend) RegisterDcabs1(fn Dcabs1Kernel) { be.put("dcabs1", eraseFunc(fn)) }

// Level 2.

// RegisterSgemv binds the sgemv kernel.
func (be *Backend) RegisterSgemv(fn SgemvKernel) { be.put("sgemv", eraseFunc(fn)) }

// RegisterDgemv binds the dgemv kernel.
func (be *Backend) RegisterDgemv(fn DgemvKernel) { be.put("dgemv", eraseFunc(fn)) }

// RegisterCgemv binds the cgemv kernel.
func (be *Backend) RegisterCgemv(fn CgemvKernel) { be.put("cgemv", eraseFunc(fn)) }

// RegisterZgemv binds the zgemv kernel.
func (be *Backend) RegisterZgemv(fn ZgemvKernel) { be.put("zgemv", eraseFunc(fn)) }

// RegisterSsymv binds the ssymv kernel.
func (be *Backend) RegisterSsymv(fn SsymvKernel) { be.put("ssymv", eraseFunc(fn)) }

// RegisterDsymv binds the dsymv kernel.
func (be *Backend) RegisterDsymv(fn DsymvKernel) { be.put("dsymv", eraseFunc(fn)) }

// RegisterChemv binds the chemv kernel.
func (be *Backend) RegisterChemv(fn ChemvKernel) { be.put("chemv", eraseFunc(fn)) }

// RegisterZhemv binds the zhemv kernel.
func (be *Backend) RegisterZhemv(fn ZhemvKernel) { be.put("zhemv", eraseFunc(fn)) }

// RegisterStrmv binds the strmv kernel.
func (be *Backend) RegisterStrmv(fn StrmvKernel) { be.put("strmv", eraseFunc(fn)) }

// RegisterDtrmv binds the dtrmv kernel.
func (be *Backend) RegisterDtrmv(fn DtrmvKernel) { be.put("dtrmv", eraseFunc(fn)) }

// RegisterCtrmv binds the ctrmv kernel.
func (be *Backend) RegisterCtrmv(fn CtrmvKernel) { be.put("ctrmv", eraseFunc(fn)) }

// RegisterZtrmv binds the ztrmv kernel.
func (be *Backend) RegisterZtrmv(fn ZtrmvKernel) { be.put("ztrmv", eraseFunc(fn)) }

// RegisterStrsv binds the strsv kernel.
func (be *Backend) RegisterStrsv(fn StrsvKernel) { be.put("strsv", eraseFunc(fn)) }

// RegisterDtrsv binds the dtrsv kernel.
func (be *Backend) RegisterDtrsv(fn DtrsvKernel) { be.put("dtrsv", eraseFunc(fn)) }

// RegisterCtrsv binds the ctrsv kernel.
func (be *Backend) RegisterCtrsv(fn CtrsvKernel) { be.put("ctrsv", eraseFunc(fn)) }

// RegisterZtrsv binds the ztrsv kernel.
func (be *Backend) RegisterZtrsv(fn ZtrsvKernel) { be.put("ztrsv", eraseFunc(fn)) }

// RegisterSger binds the sger kernel.
func (be *Backend) RegisterSger(fn SgerKernel) { be.put("sger", eraseFunc(fn)) }

// RegisterDger binds the dger kernel.
func (be *Backend) RegisterDger(fn DgerKernel) { be.put("dger", eraseFunc(fn)) }

// RegisterCgeru binds the cgeru kernel.
func (be *Backend) RegisterCgeru(fn CgeruKernel) { be.put("cgeru", eraseFunc(fn)) }

// RegisterZgeru binds the zgeru kernel.
func (be *Backend) RegisterZgeru(fn ZgeruKernel) { be.put("zgeru", eraseFunc(fn)) }

// RegisterCgerc binds the cgerc kernel.
func (be *Backend) RegisterCgerc(fn CgercKernel) { be.put("cgerc", eraseFunc(fn)) }

// RegisterZgerc binds the zgerc kernel.
func (be *Backend) RegisterZgerc(fn ZgercKernel) { be.put("zgerc", eraseFunc(fn)) }

// RegisterSsyr binds the ssyr kernel.
func (be *Backend) RegisterSsyr(fn SsyrKernel) { be.put("ssyr", eraseFunc(fn)) }

// RegisterDsyr binds the dsyr kernel.
func (be *Backend) RegisterDsyr(fn DsyrKernel) { be.put("dsyr", eraseFunc(fn)) }

// RegisterCher binds the cher kernel.
func (be *Backend) RegisterCher(fn CherKernel) { be.put("cher", eraseFunc(fn)) }

// RegisterZher binds the zher kernel.
func (be *Backend) RegisterZher(fn ZherKernel) { be.put("zher", eraseFunc(fn)) }

// RegisterSsyr2 binds the ssyr2 kernel.
func (be *Backend) RegisterSsyr2(fn Ssyr2Kernel) { be.put("ssyr2", eraseFunc(fn)) }

// RegisterDsyr2 binds the dsyr2 kernel.
func (be *Backend) RegisterDsyr2(fn Dsyr2Kernel) { be.put("dsyr2", eraseFunc(fn)) }

// RegisterCher2 binds the cher2 kernel.
func (be *Backend) RegisterCher2(fn Cher2Kernel) { be.put("cher2", eraseFunc(fn)) }

// RegisterZher2 binds the zher2 kernel.
func (be *Backend) RegisterZher2(fn Zher2Kernel) { be.put("zher2", eraseFunc(fn)) }

// Level 3.

// RegisterSgemm binds the sgemm kernel.
func (be *Backend) RegisterSgemm(fn SgemmKernel) { be.put("sgemm", eraseFunc(fn)) }

// RegisterDgemm binds the dgemm kernel.
func (be *Backend) RegisterDgemm(fn DgemmKernel) { be.put("dgemm", eraseFunc(fn)) }

// RegisterCgemm binds the cgemm kernel.
func (be *Backend) RegisterCgemm(fn CgemmKernel) { be.put("cgemm", eraseFunc(fn)) }

// RegisterZgemm binds the zgemm kernel.
func (be *Backend) RegisterZgemm(fn ZgemmKernel) { be.put("zgemm", eraseFunc(fn)) }

// RegisterSsymm binds the ssymm kernel.
func (be *Backend) RegisterSsymm(fn SsymmKernel) { be.put("ssymm", eraseFunc(fn)) }

// RegisterDsymm binds the dsymm kernel.
func (be *Backend) RegisterDsymm(fn DsymmKernel) { be.put("dsymm", eraseFunc(fn)) }

// RegisterCsymm binds the csymm kernel.
func (be *Backend) RegisterCsymm(fn CsymmKernel) { be.put("csymm", eraseFunc(fn)) }

// RegisterZsymm binds the zsymm kernel.
func (be *Backend) RegisterZsymm(fn ZsymmKernel) { be.put("zsymm", eraseFunc(fn)) }

// RegisterChemm binds the chemm kernel.
func (be *Backend) RegisterChemm(fn ChemmKernel) { be.put("chemm", eraseFunc(fn)) }

// RegisterZhemm binds the zhemm kernel.
func (be *Backend) RegisterZhemm(fn ZhemmKernel) { be.put("zhemm", eraseFunc(fn)) }

// RegisterSsyrk binds the ssyrk kernel.
func (be *Backend) RegisterSsyrk(fn SsyrkKernel) { be.put("ssyrk", eraseFunc(fn)) }

// RegisterDsyrk binds the dsyrk kernel.
func (be *Backend) RegisterDsyrk(fn DsyrkKernel) { be.put("dsyrk", eraseFunc(fn)) }

// RegisterCsyrk binds the csyrk kernel.
func (be *Backend) RegisterCsyrk(fn CsyrkKernel) { be.put("csyrk", eraseFunc(fn)) }

// RegisterZsyrk binds the zsyrk kernel.
func (be *Backend) RegisterZsyrk(fn ZsyrkKernel) { be.put("zsyrk", eraseFunc(fn)) }

// RegisterCherk binds the cherk kernel.
func (be *Backend) RegisterCherk(fn CherkKernel) { be.put("cherk", eraseFunc(fn)) }

// RegisterZherk binds the zherk kernel.
func (be *Backend) RegisterZherk(fn ZherkKernel) { be.put("zherk", eraseFunc(fn)) }

// RegisterSsyr2k binds the ssyr2k kernel.
func (be *Backend) RegisterSsyr2k(fn Ssyr2kKernel) { be.put("ssyr2k", eraseFunc(fn)) }

// RegisterDsyr2k binds the dsyr2k kernel.
func (be *Backend) RegisterDsyr2k(fn Dsyr2kKernel) { be.put("dsyr2k", eraseFunc(fn)) }

// RegisterCsyr2k binds the csyr2k kernel.
func (be *Backend) RegisterCsyr2k(fn Csyr2kKernel) { be.put("csyr2k", eraseFunc(fn)) }

// RegisterZsyr2k binds the zsyr2k kernel.
func (be *Backend) RegisterZsyr2k(fn Zsyr2kKernel) { be.put("zsyr2k", eraseFunc(fn)) }

// RegisterCher2k binds the cher2k kernel.
func (be *Backend) RegisterCher2k(fn Cher2kKernel) { be.put("cher2k", eraseFunc(fn)) }

// RegisterZher2k binds the zher2k kernel.
func (be *Backend) RegisterZher2k(fn Zher2kKernel) { be.put("zher2k", eraseFunc(fn)) }

// RegisterStrmm binds the strmm kernel.
func (be *Backend) RegisterStrmm(fn StrmmKernel) { be.put("strmm", eraseFunc(fn)) }

// RegisterDtrmm binds the dtrmm kernel.
func (be *Backend) RegisterDtrmm(fn DtrmmKernel) { be.put("dtrmm", eraseFunc(fn)) }

// RegisterCtrmm binds the ctrmm kernel.
func (be *Backend) RegisterCtrmm(fn CtrmmKernel) { be.put("ctrmm", eraseFunc(fn)) }

// RegisterZtrmm binds the ztrmm kernel.
func (be *Backend) RegisterZtrmm(fn ZtrmmKernel) { be.put("ztrmm", eraseFunc(fn)) }

// RegisterStrsm binds the strsm kernel.
func (be *Backend) RegisterStrsm(fn StrsmKernel) { be.put("strsm", eraseFunc(fn)) }

// RegisterDtrsm binds the dtrsm kernel.
func (be *Backend) RegisterDtrsm(fn DtrsmKernel) { be.put("dtrsm", eraseFunc(fn)) }

// RegisterCtrsm binds the ctrsm kernel.
func (be *Backend) RegisterCtrsm(fn CtrsmKernel) { be.put("ctrsm", eraseFunc(fn)) }

// RegisterZtrsm binds the ztrsm kernel.
func (be *Backend) RegisterZtrsm(fn ZtrsmKernel) { be.put("ztrsm", eraseFunc(fn)) }
