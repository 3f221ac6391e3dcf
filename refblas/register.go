package refblas

import "github.com/LynnColeArt/blasbridge"

// RegisterAll binds every kernel in this package to be, covering the
// full dispatch surface. The complex dot products register in
// return-value style; pair RegisterAll with the backend's default
// convention or set ReturnValue explicitly.
func RegisterAll(be *blasbridge.Backend) {
	be.RegisterSrotg(Srotg)
	be.RegisterDrotg(Drotg)
	be.RegisterSrotmg(Srotmg)
	be.RegisterDrotmg(Drotmg)
	be.RegisterSrot(Srot)
	be.RegisterDrot(Drot)
	be.RegisterSrotm(Srotm)
	be.RegisterDrotm(Drotm)

	be.RegisterSswap(Sswap)
	be.RegisterDswap(Dswap)
	be.RegisterCswap(Cswap)
	be.RegisterZswap(Zswap)
	be.RegisterScopy(Scopy)
	be.RegisterDcopy(Dcopy)
	be.RegisterCcopy(Ccopy)
	be.RegisterZcopy(Zcopy)
	be.RegisterSaxpy(Saxpy)
	be.RegisterDaxpy(Daxpy)
	be.RegisterCaxpy(Caxpy)
	be.RegisterZaxpy(Zaxpy)
	be.RegisterSscal(Sscal)
	be.RegisterDscal(Dscal)
	be.RegisterCscal(Cscal)
	be.RegisterZscal(Zscal)
	be.RegisterCsscal(Csscal)
	be.RegisterZdscal(Zdscal)

	be.RegisterSdot(Sdot)
	be.RegisterDdot(Ddot)
	be.RegisterDsdot(Dsdot)
	be.RegisterSdsdot(Sdsdot)
	be.RegisterCdotu(blasbridge.CdotuValue(Cdotu))
	be.RegisterCdotc(blasbridge.CdotcValue(Cdotc))
	be.RegisterZdotu(blasbridge.ZdotuValue(Zdotu))
	be.RegisterZdotc(blasbridge.ZdotcValue(Zdotc))

	be.RegisterSnrm2(Snrm2)
	be.RegisterDnrm2(Dnrm2)
	be.RegisterScnrm2(Scnrm2)
	be.RegisterDznrm2(Dznrm2)
	be.RegisterSasum(Sasum)
	be.RegisterDasum(Dasum)
	be.RegisterScasum(Scasum)
	be.RegisterDzasum(Dzasum)
	be.RegisterIsamax(Isamax)
	be.RegisterIdamax(Idamax)
	be.RegisterIcamax(Icamax)
	be.RegisterIzamax(Izamax)
	be.RegisterScabs1(Scabs1)
	be.RegisterDcabs1(Dcabs1)

	be.RegisterSgemv(Sgemv)
	be.RegisterDgemv(Dgemv)
	be.RegisterCgemv(Cgemv)
	be.RegisterZgemv(Zgemv)
	be.RegisterSsymv(Ssymv)
	be.RegisterDsymv(Dsymv)
	be.RegisterChemv(Chemv)
	be.RegisterZhemv(Zhemv)
	be.RegisterStrmv(Strmv)
	be.RegisterDtrmv(Dtrmv)
	be.RegisterCtrmv(Ctrmv)
	be.RegisterZtrmv(Ztrmv)
	be.RegisterStrsv(Strsv)
	be.RegisterDtrsv(Dtrsv)
	be.RegisterCtrsv(Ctrsv)
	be.RegisterZtrsv(Ztrsv)
	be.RegisterSger(Sger)
	be.RegisterDger(Dger)
	be.RegisterCgeru(Cgeru)
	be.RegisterZgeru(Zgeru)
	be.RegisterCgerc(Cgerc)
	be.RegisterZgerc(Zgerc)
	be.RegisterSsyr(Ssyr)
	be.RegisterDsyr(Dsyr)
	be.RegisterCher(Cher)
	be.RegisterZher(Zher)
	be.RegisterSsyr2(Ssyr2)
	be.RegisterDsyr2(Dsyr2)
	be.RegisterCher2(Cher2)
	be.RegisterZher2(Zher2)

	be.RegisterSgemm(Sgemm)
	be.RegisterDgemm(Dgemm)
	be.RegisterCgemm(Cgemm)
	be.RegisterZgemm(Zgemm)
	be.RegisterSsymm(Ssymm)
	be.RegisterDsymm(Dsymm)
	be.RegisterCsymm(Csymm)
	be.RegisterZsymm(Zsymm)
	be.RegisterChemm(Chemm)
	be.RegisterZhemm(Zhemm)
	be.RegisterSsyrk(Ssyrk)
	be.RegisterDsyrk(Dsyrk)
	be.RegisterCsyrk(Csyrk)
	be.RegisterZsyrk(Zsyrk)
	be.RegisterCherk(Cherk)
	be.RegisterZherk(Zherk)
	be.RegisterSsyr2k(Ssyr2k)
	be.RegisterDsyr2k(Dsyr2k)
	be.RegisterCsyr2k(Csyr2k)
	be.RegisterZsyr2k(Zsyr2k)
	be.RegisterCher2k(Cher2k)
	be.RegisterZher2k(Zher2k)
	be.RegisterStrmm(Strmm)
	be.RegisterDtrmm(Dtrmm)
	be.RegisterCtrmm(Ctrmm)
	be.RegisterZtrmm(Ztrmm)
	be.RegisterStrsm(Strsm)
	be.RegisterDtrsm(Dtrsm)
	be.RegisterCtrsm(Ctrsm)
	be.RegisterZtrsm(Ztrsm)
}
